package repository

import (
	"github.com/qazfinance/academy/internal/model"
	"gorm.io/gorm"
)

type LessonRepository interface {
	FindByID(id uint) (*model.Lesson, error)
	FindByIDWithQuestionsAndChoices(id uint) (*model.Lesson, error)
	CourseIDForLesson(lessonID uint) (uint, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.db.First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// FindByIDWithQuestionsAndChoices loads the lesson with questions in
// (order, id) ascending order and choices in insertion order, which is the
// canonical ordering the scoring engine relies on.
func (r *lessonRepository) FindByIDWithQuestionsAndChoices(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.\"order\" ASC, questions.id ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.id ASC")
		}).
		First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepository) CourseIDForLesson(lessonID uint) (uint, error) {
	var courseID uint
	err := r.db.Model(&model.Lesson{}).
		Select("units.course_id").
		Joins("JOIN units ON units.id = lessons.unit_id AND units.deleted_at IS NULL").
		Where("lessons.id = ?", lessonID).
		Scan(&courseID).Error
	if err != nil {
		return 0, err
	}
	if courseID == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return courseID, nil
}
