package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*Payment, error)
	// GetPendingByStudentID backs the duplicate-billing guard: approval must
	// not create a second pending bill for the same student.
	GetPendingByStudentID(ctx context.Context, studentID uint) (*Payment, error)
	Save(ctx context.Context, p *Payment) error
}
