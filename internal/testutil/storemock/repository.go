// Package storemock provides function-backed repository mocks. Fill in only
// the function fields a test needs; unfilled lookups fail loudly.
package storemock

import (
	"context"
	"errors"

	"github.com/lavizaismail/hostelhub/internal/domain/allocation"
	"github.com/lavizaismail/hostelhub/internal/domain/audit"
	"github.com/lavizaismail/hostelhub/internal/domain/complaint"
	"github.com/lavizaismail/hostelhub/internal/domain/notification"
	"github.com/lavizaismail/hostelhub/internal/domain/payment"
	"github.com/lavizaismail/hostelhub/internal/domain/room"
	"github.com/lavizaismail/hostelhub/internal/domain/student"
	"github.com/lavizaismail/hostelhub/internal/domain/user"
)

// Compile-time compliance
var (
	_ user.Repository         = (*UserRepo)(nil)
	_ student.Repository      = (*StudentRepo)(nil)
	_ room.Repository         = (*RoomRepo)(nil)
	_ allocation.Repository   = (*AllocationRepo)(nil)
	_ payment.Repository      = (*PaymentRepo)(nil)
	_ complaint.Repository    = (*ComplaintRepo)(nil)
	_ notification.Repository = (*NotificationRepo)(nil)
	_ audit.Repository        = (*AuditRepo)(nil)
)

var errUnimplemented = errors.New("storemock: method not implemented")

type UserRepo struct {
	CreateFn           func(ctx context.Context, u *user.User) error
	GetByIDFn          func(ctx context.Context, id uint) (*user.User, error)
	FindActiveByRoleFn func(ctx context.Context, role user.Role) ([]user.User, error)
}

func (m *UserRepo) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *UserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *UserRepo) FindActiveByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	if m.FindActiveByRoleFn != nil {
		return m.FindActiveByRoleFn(ctx, role)
	}
	return nil, nil
}

type StudentRepo struct {
	CreateFn      func(ctx context.Context, s *student.Student) error
	GetByIDFn     func(ctx context.Context, id uint) (*student.Student, error)
	GetByUserIDFn func(ctx context.Context, userID uint) (*student.Student, error)
}

func (m *StudentRepo) Create(ctx context.Context, s *student.Student) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *StudentRepo) GetByID(ctx context.Context, id uint) (*student.Student, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *StudentRepo) GetByUserID(ctx context.Context, userID uint) (*student.Student, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}

type RoomRepo struct {
	CreateFn           func(ctx context.Context, r *room.Room) error
	GetByIDFn          func(ctx context.Context, id uint) (*room.Room, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint) (*room.Room, error)
	SaveFn             func(ctx context.Context, r *room.Room) error
}

func (m *RoomRepo) Create(ctx context.Context, r *room.Room) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *RoomRepo) GetByID(ctx context.Context, id uint) (*room.Room, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *RoomRepo) GetByIDForUpdate(ctx context.Context, id uint) (*room.Room, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *RoomRepo) Save(ctx context.Context, r *room.Room) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

type AllocationRepo struct {
	CreateFn                           func(ctx context.Context, a *allocation.RoomAllocation) error
	GetByIDFn                          func(ctx context.Context, id uint) (*allocation.RoomAllocation, error)
	GetByIDForUpdateFn                 func(ctx context.Context, id uint) (*allocation.RoomAllocation, error)
	GetOpenByStudentIDFn               func(ctx context.Context, studentID uint) (*allocation.RoomAllocation, error)
	GetByStudentIDAndStatusFn          func(ctx context.Context, studentID uint, status allocation.Status) (*allocation.RoomAllocation, error)
	GetByStudentIDAndStatusForUpdateFn func(ctx context.Context, studentID uint, status allocation.Status) (*allocation.RoomAllocation, error)
	SaveFn                             func(ctx context.Context, a *allocation.RoomAllocation) error
}

func (m *AllocationRepo) Create(ctx context.Context, a *allocation.RoomAllocation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *AllocationRepo) GetByID(ctx context.Context, id uint) (*allocation.RoomAllocation, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *AllocationRepo) GetByIDForUpdate(ctx context.Context, id uint) (*allocation.RoomAllocation, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *AllocationRepo) GetOpenByStudentID(ctx context.Context, studentID uint) (*allocation.RoomAllocation, error) {
	if m.GetOpenByStudentIDFn != nil {
		return m.GetOpenByStudentIDFn(ctx, studentID)
	}
	return nil, errUnimplemented
}
func (m *AllocationRepo) GetByStudentIDAndStatus(ctx context.Context, studentID uint, status allocation.Status) (*allocation.RoomAllocation, error) {
	if m.GetByStudentIDAndStatusFn != nil {
		return m.GetByStudentIDAndStatusFn(ctx, studentID, status)
	}
	return nil, errUnimplemented
}
func (m *AllocationRepo) GetByStudentIDAndStatusForUpdate(ctx context.Context, studentID uint, status allocation.Status) (*allocation.RoomAllocation, error) {
	if m.GetByStudentIDAndStatusForUpdateFn != nil {
		return m.GetByStudentIDAndStatusForUpdateFn(ctx, studentID, status)
	}
	return nil, errUnimplemented
}
func (m *AllocationRepo) Save(ctx context.Context, a *allocation.RoomAllocation) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

type PaymentRepo struct {
	CreateFn                func(ctx context.Context, p *payment.Payment) error
	GetByIDFn               func(ctx context.Context, id uint) (*payment.Payment, error)
	GetByIDForUpdateFn      func(ctx context.Context, id uint) (*payment.Payment, error)
	GetPendingByStudentIDFn func(ctx context.Context, studentID uint) (*payment.Payment, error)
	SaveFn                  func(ctx context.Context, p *payment.Payment) error
}

func (m *PaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *PaymentRepo) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *PaymentRepo) GetByIDForUpdate(ctx context.Context, id uint) (*payment.Payment, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *PaymentRepo) GetPendingByStudentID(ctx context.Context, studentID uint) (*payment.Payment, error) {
	if m.GetPendingByStudentIDFn != nil {
		return m.GetPendingByStudentIDFn(ctx, studentID)
	}
	return nil, errUnimplemented
}
func (m *PaymentRepo) Save(ctx context.Context, p *payment.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

type ComplaintRepo struct {
	CreateFn           func(ctx context.Context, c *complaint.Complaint) error
	GetByIDFn          func(ctx context.Context, id uint) (*complaint.Complaint, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint) (*complaint.Complaint, error)
	SaveFn             func(ctx context.Context, c *complaint.Complaint) error
}

func (m *ComplaintRepo) Create(ctx context.Context, c *complaint.Complaint) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *ComplaintRepo) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *ComplaintRepo) GetByIDForUpdate(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *ComplaintRepo) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

type NotificationRepo struct {
	CreateFn       func(ctx context.Context, n *notification.Notification) error
	FindByUserIDFn func(ctx context.Context, userID uint) ([]notification.Notification, error)
	MarkReadFn     func(ctx context.Context, id, userID uint) error
}

func (m *NotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}
func (m *NotificationRepo) FindByUserID(ctx context.Context, userID uint) ([]notification.Notification, error) {
	if m.FindByUserIDFn != nil {
		return m.FindByUserIDFn(ctx, userID)
	}
	return nil, nil
}
func (m *NotificationRepo) MarkRead(ctx context.Context, id, userID uint) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, id, userID)
	}
	return nil
}

type AuditRepo struct {
	RecordFn     func(ctx context.Context, e *audit.Entry) error
	FindRecentFn func(ctx context.Context, limit int) ([]audit.Entry, error)
}

func (m *AuditRepo) Record(ctx context.Context, e *audit.Entry) error {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, e)
	}
	return nil
}
func (m *AuditRepo) FindRecent(ctx context.Context, limit int) ([]audit.Entry, error) {
	if m.FindRecentFn != nil {
		return m.FindRecentFn(ctx, limit)
	}
	return nil, nil
}
