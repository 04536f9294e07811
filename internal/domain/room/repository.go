package room

import "context"

type Repository interface {
	Create(ctx context.Context, r *Room) error
	GetByID(ctx context.Context, id uint) (*Room, error)
	// GetByIDForUpdate locks the room row for the rest of the transaction.
	// Occupancy changes must go through this to close the last-slot race.
	GetByIDForUpdate(ctx context.Context, id uint) (*Room, error)
	Save(ctx context.Context, r *Room) error
}
