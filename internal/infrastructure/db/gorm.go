package db

import (
	"log"
	"time"

	"github.com/lavizaismail/hostelhub/internal/domain/allocation"
	"github.com/lavizaismail/hostelhub/internal/domain/audit"
	"github.com/lavizaismail/hostelhub/internal/domain/complaint"
	"github.com/lavizaismail/hostelhub/internal/domain/notification"
	"github.com/lavizaismail/hostelhub/internal/domain/payment"
	"github.com/lavizaismail/hostelhub/internal/domain/room"
	"github.com/lavizaismail/hostelhub/internal/domain/student"
	"github.com/lavizaismail/hostelhub/internal/domain/user"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates or updates every workflow table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&student.Student{},
		&room.Room{},
		&allocation.RoomAllocation{},
		&payment.Payment{},
		&complaint.Complaint{},
		&notification.Notification{},
		&audit.Entry{},
	)
}
