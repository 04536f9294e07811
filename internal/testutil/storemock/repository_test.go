package storemock

import (
	"context"
	"errors"
	"testing"

	"github.com/lavizaismail/hostelhub/internal/domain/allocation"
	"github.com/lavizaismail/hostelhub/internal/domain/notification"
	"github.com/lavizaismail/hostelhub/internal/domain/payment"
	"github.com/lavizaismail/hostelhub/internal/domain/room"
)

func TestRoomRepo_UsesProvidedFuncs(t *testing.T) {
	ctx := context.Background()
	want := &room.Room{ID: 5}

	called := false
	m := &RoomRepo{
		GetByIDForUpdateFn: func(gotCtx context.Context, id uint) (*room.Room, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("ctx mismatch")
			}
			if id != 5 {
				t.Fatalf("id = %d, want 5", id)
			}
			return want, nil
		},
	}
	got, err := m.GetByIDForUpdate(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != want || !called {
		t.Fatalf("provided func not used")
	}
}

func TestDefaults_WritesAreNoops(t *testing.T) {
	ctx := context.Background()

	if err := (&RoomRepo{}).Save(ctx, &room.Room{}); err != nil {
		t.Fatalf("Save default: want nil, got %v", err)
	}
	if err := (&AllocationRepo{}).Create(ctx, &allocation.RoomAllocation{}); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
	if err := (&PaymentRepo{}).Save(ctx, &payment.Payment{}); err != nil {
		t.Fatalf("Save default: want nil, got %v", err)
	}
	if err := (&NotificationRepo{}).Create(ctx, &notification.Notification{}); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
	if err := (&NotificationRepo{}).MarkRead(ctx, 1, 1); err != nil {
		t.Fatalf("MarkRead default: want nil, got %v", err)
	}
}

func TestDefaults_LookupsFailLoudly(t *testing.T) {
	ctx := context.Background()

	if _, err := (&RoomRepo{}).GetByID(ctx, 1); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetByID default: want errUnimplemented, got %v", err)
	}
	if _, err := (&AllocationRepo{}).GetOpenByStudentID(ctx, 1); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetOpenByStudentID default: want errUnimplemented, got %v", err)
	}
	if _, err := (&PaymentRepo{}).GetPendingByStudentID(ctx, 1); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetPendingByStudentID default: want errUnimplemented, got %v", err)
	}
	if _, err := (&ComplaintRepo{}).GetByIDForUpdate(ctx, 1); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetByIDForUpdate default: want errUnimplemented, got %v", err)
	}
}

func TestDefaults_ListsReturnEmpty(t *testing.T) {
	ctx := context.Background()

	if got, err := (&UserRepo{}).FindActiveByRole(ctx, "warden"); err != nil || got != nil {
		t.Fatalf("FindActiveByRole default: want (nil, nil), got (%v, %v)", got, err)
	}
	if got, err := (&NotificationRepo{}).FindByUserID(ctx, 1); err != nil || got != nil {
		t.Fatalf("FindByUserID default: want (nil, nil), got (%v, %v)", got, err)
	}
	if got, err := (&AuditRepo{}).FindRecent(ctx, 10); err != nil || got != nil {
		t.Fatalf("FindRecent default: want (nil, nil), got (%v, %v)", got, err)
	}
}

func TestErrorPropagation(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("boom")

	m := &PaymentRepo{
		SaveFn: func(context.Context, *payment.Payment) error { return sentinel },
	}
	if err := m.Save(ctx, &payment.Payment{}); !errors.Is(err, sentinel) {
		t.Fatalf("Save: want %v, got %v", sentinel, err)
	}
}
