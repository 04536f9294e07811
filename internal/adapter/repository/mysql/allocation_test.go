package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	allocationDomain "github.com/lavizaismail/hostelhub/internal/domain/allocation"

	"gorm.io/gorm"
)

func TestAllocationCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewAllocationRepository(db)
	ctx := context.Background()

	a := makeAllocation(1, 1, allocationDomain.StatusPendingApproval, time.Now().UTC())
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.StudentID != 1 || got.Status != allocationDomain.StatusPendingApproval {
		t.Errorf("unexpected allocation: %+v", got)
	}
}

func TestAllocationGetOpenByStudentID(t *testing.T) {
	db := openTestDB(t)
	repo := NewAllocationRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()

	// Terminal records never count as open.
	if err := repo.Create(ctx, makeAllocation(7, 1, allocationDomain.StatusRejected, now.Add(-3*time.Hour))); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, makeAllocation(7, 2, allocationDomain.StatusCheckedOut, now.Add(-2*time.Hour))); err != nil {
		t.Fatal(err)
	}

	want := makeAllocation(7, 3, allocationDomain.StatusPendingApproval, now.Add(-1*time.Hour))
	if err := repo.Create(ctx, want); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetOpenByStudentID(ctx, 7)
	if err != nil {
		t.Fatalf("GetOpenByStudentID: %v", err)
	}
	if got.ID != want.ID || got.Status != allocationDomain.StatusPendingApproval {
		t.Fatalf("unexpected open allocation: %+v", got)
	}

	// A student with only terminal history has no open allocation.
	if err := repo.Create(ctx, makeAllocation(8, 1, allocationDomain.StatusRejected, now)); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetOpenByStudentID(ctx, 8); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found for terminal-only student, got %v", err)
	}
}

func TestAllocationGetByStudentIDAndStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewAllocationRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	if err := repo.Create(ctx, makeAllocation(4, 1, allocationDomain.StatusRejected, now.Add(-time.Hour))); err != nil {
		t.Fatal(err)
	}
	want := makeAllocation(4, 2, allocationDomain.StatusPendingPayment, now)
	if err := repo.Create(ctx, want); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByStudentIDAndStatus(ctx, 4, allocationDomain.StatusPendingPayment)
	if err != nil {
		t.Fatalf("GetByStudentIDAndStatus: %v", err)
	}
	if got.ID != want.ID {
		t.Fatalf("unexpected allocation: %+v", got)
	}

	if _, err := repo.GetByStudentIDAndStatus(ctx, 4, allocationDomain.StatusActive); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found for absent status, got %v", err)
	}
}

func TestAllocationSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewAllocationRepository(db)
	ctx := context.Background()

	a := makeAllocation(5, 1, allocationDomain.StatusPendingApproval, time.Now().UTC())
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	a.Status = allocationDomain.StatusRejected
	a.RejectionReason = "block under renovation"
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != allocationDomain.StatusRejected || got.RejectionReason != "block under renovation" {
		t.Errorf("update not persisted: %+v", got)
	}
}
