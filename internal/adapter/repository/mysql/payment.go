package mysql

import (
	"context"

	paymentDomain "github.com/lavizaismail/hostelhub/internal/domain/payment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).First(&out, "paymentid = ?", id)
	return &out, res.Error
}

func (r *PaymentRepository) GetByIDForUpdate(ctx context.Context, id uint) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "paymentid = ?", id)
	return &out, res.Error
}

func (r *PaymentRepository) GetPendingByStudentID(ctx context.Context, studentID uint) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("studentid = ? AND status = ?", studentID, paymentDomain.StatusPending).
		Order("created_at DESC, paymentid DESC").
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) Save(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}
