package repository

import (
	"github.com/qazfinance/academy/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindByUserAndLesson(userID, lessonID uint) (*model.LessonProgress, error)
	FindAllByUserAndCourse(userID, courseID uint) ([]model.LessonProgress, error)
	UpsertScore(tx *gorm.DB, userID, lessonID uint, score, completionThreshold float64) (*model.LessonProgress, error)
	AverageBestScore(tx *gorm.DB, userID uint) (float64, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindByUserAndLesson(userID, lessonID uint) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	err := r.db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) FindAllByUserAndCourse(userID, courseID uint) ([]model.LessonProgress, error) {
	var records []model.LessonProgress
	err := r.db.Model(&model.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id AND lessons.deleted_at IS NULL").
		Joins("JOIN units ON units.id = lessons.unit_id AND units.deleted_at IS NULL").
		Where("lesson_progresses.user_id = ? AND units.course_id = ?", userID, courseID).
		Find(&records).Error
	return records, err
}

// UpsertScore applies one submission's score to the (user, lesson) progress
// row. The update path is a single conditional UPDATE so best_score stays
// monotonic even when two submissions race: each statement takes the row
// lock and folds its score into the stored maximum. The create path is
// guarded by the unique (user_id, lesson_id) index; a losing concurrent
// insert fails the surrounding transaction, which the caller may retry.
func (r *progressRepository) UpsertScore(tx *gorm.DB, userID, lessonID uint, score, completionThreshold float64) (*model.LessonProgress, error) {
	res := tx.Model(&model.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Updates(map[string]interface{}{
			"last_score": score,
			"best_score": gorm.Expr("CASE WHEN best_score >= ? THEN best_score ELSE ? END", score, score),
			"completed":  gorm.Expr("CASE WHEN best_score >= ? THEN best_score ELSE ? END >= ?", score, score, completionThreshold),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		progress := model.LessonProgress{
			UserID:    userID,
			LessonID:  lessonID,
			BestScore: score,
			LastScore: score,
			Completed: score >= completionThreshold,
		}
		if err := tx.Create(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}

	var progress model.LessonProgress
	if err := tx.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) AverageBestScore(tx *gorm.DB, userID uint) (float64, error) {
	var avg float64
	err := tx.Model(&model.LessonProgress{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(best_score), 0)").
		Scan(&avg).Error
	return avg, err
}
