package complaint

import "context"

type Repository interface {
	Create(ctx context.Context, c *Complaint) error
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*Complaint, error)
	Save(ctx context.Context, c *Complaint) error
}
