package repository

import (
	"github.com/qazfinance/academy/internal/model"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Exists(userID, courseID uint) (bool, error)
	GetOrCreate(userID, courseID uint) (*model.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Exists(userID, courseID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *enrollmentRepository) GetOrCreate(userID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.
		Where(model.Enrollment{UserID: userID, CourseID: courseID}).
		FirstOrCreate(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
