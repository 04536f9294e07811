package mysql

import (
	"context"

	allocationDomain "github.com/lavizaismail/hostelhub/internal/domain/allocation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AllocationRepository struct{ db *gorm.DB }

func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

func (r *AllocationRepository) Create(ctx context.Context, a *allocationDomain.RoomAllocation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AllocationRepository) GetByID(ctx context.Context, id uint) (*allocationDomain.RoomAllocation, error) {
	var out allocationDomain.RoomAllocation
	res := r.db.WithContext(ctx).First(&out, "allocationid = ?", id)
	return &out, res.Error
}

func (r *AllocationRepository) GetByIDForUpdate(ctx context.Context, id uint) (*allocationDomain.RoomAllocation, error) {
	var out allocationDomain.RoomAllocation
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "allocationid = ?", id)
	return &out, res.Error
}

func (r *AllocationRepository) GetOpenByStudentID(ctx context.Context, studentID uint) (*allocationDomain.RoomAllocation, error) {
	var out allocationDomain.RoomAllocation
	res := r.db.WithContext(ctx).
		Where("studentid = ? AND status IN ?", studentID, allocationDomain.NonTerminalStatuses()).
		Order("request_date DESC, allocationid DESC").
		First(&out)
	return &out, res.Error
}

func (r *AllocationRepository) GetByStudentIDAndStatus(ctx context.Context, studentID uint, status allocationDomain.Status) (*allocationDomain.RoomAllocation, error) {
	var out allocationDomain.RoomAllocation
	res := r.db.WithContext(ctx).
		Where("studentid = ? AND status = ?", studentID, status).
		First(&out)
	return &out, res.Error
}

func (r *AllocationRepository) GetByStudentIDAndStatusForUpdate(ctx context.Context, studentID uint, status allocationDomain.Status) (*allocationDomain.RoomAllocation, error) {
	var out allocationDomain.RoomAllocation
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("studentid = ? AND status = ?", studentID, status).
		First(&out)
	return &out, res.Error
}

func (r *AllocationRepository) Save(ctx context.Context, a *allocationDomain.RoomAllocation) error {
	return r.db.WithContext(ctx).Save(a).Error
}
