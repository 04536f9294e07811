package mysql

import (
	"context"

	domainRoom "github.com/lavizaismail/hostelhub/internal/domain/room"
	"github.com/lavizaismail/hostelhub/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bindRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:       &UserRepository{db: tx},
		Students:    &StudentRepository{db: tx},
		Rooms:       &RoomRepository{db: tx},
		Allocations: &AllocationRepository{db: tx},
		Payments:    &PaymentRepository{db: tx},
		Complaints:  &ComplaintRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepos(tx))
	})
}

func (u *GormUoW) WithinRoomTx(ctx context.Context, roomID uint, fn func(r uow.Repos, rm *domainRoom.Room) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bindRepos(tx)
		// lock the room row up-front to prevent occupancy races
		rm, err := r.Rooms.GetByIDForUpdate(ctx, roomID)
		if err != nil {
			return err
		}
		return fn(r, rm)
	})
}
