package mysql

import (
	"context"

	roomDomain "github.com/lavizaismail/hostelhub/internal/domain/room"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository struct{ db *gorm.DB }

func NewRoomRepository(db *gorm.DB) *RoomRepository { return &RoomRepository{db: db} }

func (r *RoomRepository) Create(ctx context.Context, rm *roomDomain.Room) error {
	return r.db.WithContext(ctx).Create(rm).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id uint) (*roomDomain.Room, error) {
	var out roomDomain.Room
	res := r.db.WithContext(ctx).First(&out, "roomid = ?", id)
	return &out, res.Error
}

// GetByIDForUpdate takes a row lock so occupancy checks hold until commit.
func (r *RoomRepository) GetByIDForUpdate(ctx context.Context, id uint) (*roomDomain.Room, error) {
	var out roomDomain.Room
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "roomid = ?", id)
	return &out, res.Error
}

func (r *RoomRepository) Save(ctx context.Context, rm *roomDomain.Room) error {
	return r.db.WithContext(ctx).Save(rm).Error
}
