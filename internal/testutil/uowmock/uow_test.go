package uowmock

import (
	"context"
	"errors"
	"testing"

	"github.com/lavizaismail/hostelhub/internal/domain/room"
	"github.com/lavizaismail/hostelhub/internal/domain/uow"
	"github.com/lavizaismail/hostelhub/internal/testutil/storemock"

	"gorm.io/gorm"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	rooms := &storemock.RoomRepo{}
	allocs := &storemock.AllocationRepo{}
	repos := uow.Repos{Rooms: rooms, Allocations: allocs}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Rooms != rooms || r.Allocations != allocs {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	m := &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error {
			return sentinel
		},
	}
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return nil }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{} // no funcs set
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinRoomTx(ctx, 1, func(uow.Repos, *room.Room) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinRoomTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_WithinRoomTx_ResolvesRoom(t *testing.T) {
	locked := &room.Room{ID: 5, Block: "A", Number: "101"}
	repos := uow.Repos{
		Rooms: &storemock.RoomRepo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint) (*room.Room, error) {
				if id != 5 {
					t.Fatalf("roomID = %d, want 5", id)
				}
				return locked, nil
			},
		},
	}

	innerCalled := false
	err := Passthrough(repos).WithinRoomTx(context.Background(), 5, func(r uow.Repos, rm *room.Room) error {
		innerCalled = true
		if rm != locked {
			t.Fatalf("room not forwarded: %+v", rm)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinRoomTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinRoomTx: inner fn not called")
	}
}

func TestPassthrough_WithinRoomTx_MissingRoom(t *testing.T) {
	repos := uow.Repos{
		Rooms: &storemock.RoomRepo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint) (*room.Room, error) {
				return nil, gorm.ErrRecordNotFound
			},
		},
	}

	err := Passthrough(repos).WithinRoomTx(context.Background(), 5, func(uow.Repos, *room.Room) error {
		t.Fatalf("callback must not run when the room is missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestPassthrough_WithinTx_RunsDirectly(t *testing.T) {
	repos := uow.Repos{Rooms: &storemock.RoomRepo{}}
	sentinel := errors.New("stop")

	err := Passthrough(repos).WithinTx(context.Background(), func(r uow.Repos) error {
		if r.Rooms != repos.Rooms {
			t.Fatalf("repos not forwarded")
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want %v, got %v", sentinel, err)
	}
}
