package mysql

import (
	"context"

	complaintDomain "github.com/lavizaismail/hostelhub/internal/domain/complaint"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ComplaintRepository struct{ db *gorm.DB }

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository { return &ComplaintRepository{db: db} }

func (r *ComplaintRepository) Create(ctx context.Context, c *complaintDomain.Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id uint) (*complaintDomain.Complaint, error) {
	var out complaintDomain.Complaint
	res := r.db.WithContext(ctx).First(&out, "complaintid = ?", id)
	return &out, res.Error
}

func (r *ComplaintRepository) GetByIDForUpdate(ctx context.Context, id uint) (*complaintDomain.Complaint, error) {
	var out complaintDomain.Complaint
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "complaintid = ?", id)
	return &out, res.Error
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaintDomain.Complaint) error {
	return r.db.WithContext(ctx).Save(c).Error
}
