package mysql

import (
	"context"

	studentDomain "github.com/lavizaismail/hostelhub/internal/domain/student"

	"gorm.io/gorm"
)

type StudentRepository struct{ db *gorm.DB }

func NewStudentRepository(db *gorm.DB) *StudentRepository { return &StudentRepository{db: db} }

func (r *StudentRepository) Create(ctx context.Context, s *studentDomain.Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StudentRepository) GetByID(ctx context.Context, id uint) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).First(&out, "studentid = ?", id)
	return &out, res.Error
}

func (r *StudentRepository) GetByUserID(ctx context.Context, userID uint) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).First(&out, "userid = ?", userID)
	return &out, res.Error
}
