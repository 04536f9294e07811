package allocation

import "context"

type Repository interface {
	Create(ctx context.Context, a *RoomAllocation) error
	GetByID(ctx context.Context, id uint) (*RoomAllocation, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*RoomAllocation, error)
	// GetOpenByStudentID returns the student's allocation in a non-terminal
	// state, if any. Enforcing "at most one" starts with this lookup.
	GetOpenByStudentID(ctx context.Context, studentID uint) (*RoomAllocation, error)
	GetByStudentIDAndStatus(ctx context.Context, studentID uint, status Status) (*RoomAllocation, error)
	GetByStudentIDAndStatusForUpdate(ctx context.Context, studentID uint, status Status) (*RoomAllocation, error)
	Save(ctx context.Context, a *RoomAllocation) error
}
