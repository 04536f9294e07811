package uowmock

import (
	"context"
	"errors"

	"github.com/lavizaismail/hostelhub/internal/domain/room"
	"github.com/lavizaismail/hostelhub/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRoomTxFn func(ctx context.Context, roomID uint, fn func(r uow.Repos, rm *room.Room) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRoomTx(ctx context.Context, roomID uint, fn func(r uow.Repos, rm *room.Room) error) error {
	if m.WithinRoomTxFn != nil {
		return m.WithinRoomTxFn(ctx, roomID, fn)
	}
	return errUnimplemented
}

// Passthrough wires a UoW that simply runs callbacks against the given repos
// with no transaction semantics. WithinRoomTx resolves the room through
// Repos.Rooms.GetByIDForUpdate like the real implementation.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinRoomTxFn: func(ctx context.Context, roomID uint, fn func(r uow.Repos, rm *room.Room) error) error {
			rm, err := repos.Rooms.GetByIDForUpdate(ctx, roomID)
			if err != nil {
				return err
			}
			return fn(repos, rm)
		},
	}
}
