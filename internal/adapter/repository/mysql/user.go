package mysql

import (
	"context"

	userDomain "github.com/lavizaismail/hostelhub/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).First(&out, "userid = ?", id)
	return &out, res.Error
}

func (r *UserRepository) FindActiveByRole(ctx context.Context, role userDomain.Role) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Order("userid ASC").
		Find(&out)
	return out, res.Error
}
