package mysql

import (
	"testing"
	"time"

	allocationDomain "github.com/lavizaismail/hostelhub/internal/domain/allocation"
	auditDomain "github.com/lavizaismail/hostelhub/internal/domain/audit"
	complaintDomain "github.com/lavizaismail/hostelhub/internal/domain/complaint"
	notifDomain "github.com/lavizaismail/hostelhub/internal/domain/notification"
	paymentDomain "github.com/lavizaismail/hostelhub/internal/domain/payment"
	roomDomain "github.com/lavizaismail/hostelhub/internal/domain/room"
	studentDomain "github.com/lavizaismail/hostelhub/internal/domain/student"
	userDomain "github.com/lavizaismail/hostelhub/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The domain
// models carry no MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{},
		&studentDomain.Student{},
		&roomDomain.Room{},
		&allocationDomain.RoomAllocation{},
		&paymentDomain.Payment{},
		&complaintDomain.Complaint{},
		&notifDomain.Notification{},
		&auditDomain.Entry{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeRoom(block, number string, capacity int) *roomDomain.Room {
	return &roomDomain.Room{
		Block:       block,
		Number:      number,
		Floor:       1,
		Capacity:    capacity,
		MonthlyRent: 5000,
		Gender:      roomDomain.GenderMixed,
		Status:      roomDomain.StatusVacant,
	}
}

func makeStudent(userID uint, roll string) *studentDomain.Student {
	return &studentDomain.Student{
		UserID:     userID,
		RollNumber: roll,
		FullName:   "Test Student",
		Gender:     studentDomain.GenderFemale,
		Year:       2,
		Course:     "CS",
	}
}

func makeAllocation(studentID, roomID uint, status allocationDomain.Status, requested time.Time) *allocationDomain.RoomAllocation {
	return &allocationDomain.RoomAllocation{
		StudentID:   studentID,
		RoomID:      roomID,
		Status:      status,
		RequestDate: requested,
	}
}

func makePayment(studentID, allocationID uint, status paymentDomain.Status) *paymentDomain.Payment {
	return &paymentDomain.Payment{
		StudentID:    studentID,
		AllocationID: allocationID,
		Amount:       15000,
		Status:       status,
		Month:        "January",
		Year:         2026,
	}
}
