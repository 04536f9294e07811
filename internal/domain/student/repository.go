package student

import "context"

type Repository interface {
	Create(ctx context.Context, s *Student) error
	GetByID(ctx context.Context, id uint) (*Student, error)
	GetByUserID(ctx context.Context, userID uint) (*Student, error)
}
