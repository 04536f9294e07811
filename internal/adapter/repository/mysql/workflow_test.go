package mysql

import (
	"context"
	"testing"
	"time"

	allocationDomain "github.com/lavizaismail/hostelhub/internal/domain/allocation"
	paymentDomain "github.com/lavizaismail/hostelhub/internal/domain/payment"
	roomDomain "github.com/lavizaismail/hostelhub/internal/domain/room"
	userDomain "github.com/lavizaismail/hostelhub/internal/domain/user"
	ucAllocation "github.com/lavizaismail/hostelhub/internal/usecase/allocation"
	ucBilling "github.com/lavizaismail/hostelhub/internal/usecase/billing"
	"github.com/lavizaismail/hostelhub/internal/usecase/dispatch"
	ucReceipt "github.com/lavizaismail/hostelhub/internal/usecase/receipt"
)

// TestAllocationWorkflow drives the whole admission path through the real
// repositories: request, approval, payment evidence, verification and the
// receipt, asserting the committed state after each step.
func TestAllocationWorkflow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	warden := &userDomain.User{Username: "warden1", Email: "w@hostel.test", Role: userDomain.RoleWarden, IsActive: true}
	accountant := &userDomain.User{Username: "acct1", Email: "a@hostel.test", Role: userDomain.RoleAccountant, IsActive: true}
	studentUser := &userDomain.User{Username: "nadia", Email: "n@hostel.test", Role: userDomain.RoleStudent, IsActive: true}
	for _, u := range []*userDomain.User{warden, accountant, studentUser} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user %s: %v", u.Username, err)
		}
	}
	student := makeStudent(studentUser.ID, "CS-2024-017")
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	room := makeRoom("A", "101", 1)
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}

	tx := NewGormUoW(db)
	d := dispatch.NewDispatcher(NewNotificationRepository(db), NewAuditRepository(db))
	allocUC := ucAllocation.NewUsecase(tx, d)
	billingUC := ucBilling.NewUsecase(tx, d)
	receiptUC := ucReceipt.NewUsecase(tx)

	dto, err := allocUC.RequestRoom(ctx, ucAllocation.RequestRoomInput{
		StudentID: student.ID,
		RoomID:    room.ID,
	})
	if err != nil {
		t.Fatalf("request room: %v", err)
	}
	if dto.Status != string(allocationDomain.StatusPendingApproval) {
		t.Fatalf("status after request = %q", dto.Status)
	}

	res, err := allocUC.Approve(ctx, ucAllocation.ApproveInput{WardenID: warden.ID, AllocationID: dto.AllocationID})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if res.Bill.Amount != 15000 {
		t.Fatalf("bill amount = %v, want 15000", res.Bill.Amount)
	}

	if _, err := billingUC.SubmitEvidence(ctx, ucBilling.EvidenceInput{
		StudentID:     student.ID,
		PaymentID:     res.Bill.PaymentID,
		TransactionID: "TXN-0042",
		PayerName:     "Nadia Khan",
		BankName:      "HBL",
		PaidDate:      "2026-03-10",
		PaidTime:      "14:30",
	}); err != nil {
		t.Fatalf("submit evidence: %v", err)
	}

	vr, err := billingUC.Verify(ctx, ucBilling.VerifyInput{AccountantID: accountant.ID, PaymentID: res.Bill.PaymentID})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if vr.AllocationStatus != string(allocationDomain.StatusActive) {
		t.Fatalf("allocation status after verify = %q", vr.AllocationStatus)
	}

	var committed roomDomain.Room
	if err := db.First(&committed, room.ID).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	if committed.CurrentOccupancy != 1 || committed.Status != roomDomain.StatusOccupied {
		t.Fatalf("room after verify = occupancy %d status %q", committed.CurrentOccupancy, committed.Status)
	}

	rc, err := receiptUC.Generate(ctx, student.ID, res.Bill.PaymentID)
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	if len(rc.Number) != 32 || rc.Amount != 15000 || rc.RollNumber != "CS-2024-017" {
		t.Fatalf("receipt = number %q amount %v roll %q", rc.Number, rc.Amount, rc.RollNumber)
	}

	inbox, err := NewNotificationRepository(db).FindByUserID(ctx, studentUser.ID)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(inbox) == 0 {
		t.Fatal("student received no notifications across the workflow")
	}
	entries, err := NewAuditRepository(db).FindRecent(ctx, 50)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if len(entries) < 4 {
		t.Fatalf("audit entries = %d, want at least one per step", len(entries))
	}
}

// TestAllocationWorkflow_LastSlotRace has two verified-track students compete
// for a single slot: the first verification claims it and the second rolls
// back whole, leaving the loser's payment still paid.
func TestAllocationWorkflow_LastSlotRace(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	accountant := &userDomain.User{Username: "acct1", Email: "a@hostel.test", Role: userDomain.RoleAccountant, IsActive: true}
	if err := db.Create(accountant).Error; err != nil {
		t.Fatalf("seed accountant: %v", err)
	}
	room := makeRoom("B", "202", 1)
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}

	type contender struct {
		studentID uint
		paymentID uint
	}
	var cs []contender
	for i, roll := range []string{"CS-2024-001", "CS-2024-002"} {
		u := &userDomain.User{Username: roll, Email: roll + "@hostel.test", Role: userDomain.RoleStudent, IsActive: true}
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user %d: %v", i, err)
		}
		s := makeStudent(u.ID, roll)
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("seed student %d: %v", i, err)
		}
		a := makeAllocation(s.ID, room.ID, allocationDomain.StatusPendingPayment, time.Now())
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("seed allocation %d: %v", i, err)
		}
		p := makePayment(s.ID, a.ID, paymentDomain.StatusPaid)
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed payment %d: %v", i, err)
		}
		cs = append(cs, contender{studentID: s.ID, paymentID: p.ID})
	}

	tx := NewGormUoW(db)
	d := dispatch.NewDispatcher(NewNotificationRepository(db), NewAuditRepository(db))
	billingUC := ucBilling.NewUsecase(tx, d)

	if _, err := billingUC.Verify(ctx, ucBilling.VerifyInput{AccountantID: accountant.ID, PaymentID: cs[0].paymentID}); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	if _, err := billingUC.Verify(ctx, ucBilling.VerifyInput{AccountantID: accountant.ID, PaymentID: cs[1].paymentID}); err == nil {
		t.Fatal("second verify claimed a slot that was already taken")
	}

	var committed roomDomain.Room
	if err := db.First(&committed, room.ID).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	if committed.CurrentOccupancy != 1 {
		t.Fatalf("occupancy = %d, want 1", committed.CurrentOccupancy)
	}
	var loser paymentDomain.Payment
	if err := db.First(&loser, cs[1].paymentID).Error; err != nil {
		t.Fatalf("reload losing payment: %v", err)
	}
	if loser.Status != paymentDomain.StatusPaid {
		t.Fatalf("losing payment status = %q, want paid after rollback", loser.Status)
	}
}
