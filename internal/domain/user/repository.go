package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// FindActiveByRole returns every active user holding the given role.
	// Workflow fan-out (notify wardens, accountants, maintenance) uses this.
	FindActiveByRole(ctx context.Context, role Role) ([]User, error)
}
