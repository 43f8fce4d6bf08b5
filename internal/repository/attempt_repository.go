package repository

import (
	"github.com/qazfinance/academy/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository is the append-only ledger of quiz submissions. There is
// deliberately no update or delete method.
type AttemptRepository interface {
	Create(tx *gorm.DB, attempt *model.LessonAttempt) error
	FindByID(id uint) (*model.LessonAttempt, error)
	FindAllByUserAndLesson(userID, lessonID uint) ([]model.LessonAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(tx *gorm.DB, attempt *model.LessonAttempt) error {
	return tx.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.LessonAttempt, error) {
	var attempt model.LessonAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByUserAndLesson(userID, lessonID uint) ([]model.LessonAttempt, error) {
	var attempts []model.LessonAttempt
	err := r.db.
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("submitted_at DESC, id DESC").
		Find(&attempts).Error
	return attempts, err
}
