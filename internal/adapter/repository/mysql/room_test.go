package mysql

import (
	"context"
	"errors"
	"testing"

	roomDomain "github.com/lavizaismail/hostelhub/internal/domain/room"

	"gorm.io/gorm"
)

func TestRoomCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	rm := makeRoom("A", "101", 3)
	if err := repo.Create(ctx, rm); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rm.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, rm.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Block != "A" || got.Number != "101" || got.Capacity != 3 {
		t.Errorf("unexpected room: %+v", got)
	}
	if got.Label() != "A-101" {
		t.Errorf("Label = %q, want A-101", got.Label())
	}
}

func TestRoomSaveUpdatesOccupancy(t *testing.T) {
	db := openTestDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	rm := makeRoom("B", "204", 2)
	if err := repo.Create(ctx, rm); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rm.CurrentOccupancy = 2
	rm.Status = roomDomain.StatusOccupied
	if err := repo.Save(ctx, rm); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, rm.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CurrentOccupancy != 2 || got.Status != roomDomain.StatusOccupied {
		t.Errorf("update not persisted: %+v", got)
	}
	if got.Available() {
		t.Errorf("full room reported Available")
	}
}

func TestRoomGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewRoomRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
