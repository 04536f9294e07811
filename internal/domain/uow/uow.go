package uow

import (
	"context"

	"github.com/lavizaismail/hostelhub/internal/domain/allocation"
	"github.com/lavizaismail/hostelhub/internal/domain/complaint"
	"github.com/lavizaismail/hostelhub/internal/domain/payment"
	"github.com/lavizaismail/hostelhub/internal/domain/room"
	"github.com/lavizaismail/hostelhub/internal/domain/student"
	"github.com/lavizaismail/hostelhub/internal/domain/user"
)

// Repos bundles every repository a workflow transition may touch, all bound
// to the same transaction. Notifications and audit entries stay outside: they
// are flushed after commit so their failures cannot roll a transition back.
type Repos struct {
	Users       user.Repository
	Students    student.Repository
	Rooms       room.Repository
	Allocations allocation.Repository
	Payments    payment.Repository
	Complaints  complaint.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn in one atomic transaction: commit on nil, full
	// rollback on error.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinRoomTx locks the room row first, then passes it in. Transitions
	// that read occupancy and write based on it go through here.
	WithinRoomTx(ctx context.Context, roomID uint, fn func(r Repos, rm *room.Room) error) error
}
