package repository

import (
	"github.com/qazfinance/academy/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindBySlug(slug string) (*model.Course, error)
	FindBySlugWithUnitsAndLessons(slug string) (*model.Course, error)
	FindAllPublished() ([]model.Course, error)
	DeleteCascade(tx *gorm.DB, courseID uint) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	// Nested units/lessons/questions/choices are created along with the
	// course via GORM association handling.
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindBySlug(slug string) (*model.Course, error) {
	var course model.Course
	if err := r.db.Where("slug = ? AND published = ?", slug, true).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindBySlugWithUnitsAndLessons(slug string) (*model.Course, error) {
	var course model.Course
	err := r.db.
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("units.\"order\" ASC, units.id ASC")
		}).
		Preload("Units.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.\"order\" ASC, lessons.id ASC")
		}).
		Where("slug = ? AND published = ?", slug, true).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindAllPublished() ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.Where("published = ?", true).Order("title ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// DeleteCascade soft-deletes the catalog tree bottom-up. Each subquery only
// sees live parent rows, so the order (choices, questions, lessons, units,
// course) matters. Enrollments are removed with the course; attempt and
// progress rows are intentionally left behind as archived history.
func (r *courseRepository) DeleteCascade(tx *gorm.DB, courseID uint) error {
	unitIDs := tx.Model(&model.Unit{}).Select("id").Where("course_id = ?", courseID)
	lessonIDs := tx.Model(&model.Lesson{}).Select("id").Where("unit_id IN (?)", unitIDs)
	questionIDs := tx.Model(&model.Question{}).Select("id").Where("lesson_id IN (?)", lessonIDs)

	if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Choice{}).Error; err != nil {
		return err
	}
	if err := tx.Where("lesson_id IN (?)", lessonIDs).Delete(&model.Question{}).Error; err != nil {
		return err
	}
	if err := tx.Where("unit_id IN (?)", unitIDs).Delete(&model.Lesson{}).Error; err != nil {
		return err
	}
	if err := tx.Where("course_id = ?", courseID).Delete(&model.Unit{}).Error; err != nil {
		return err
	}
	if err := tx.Where("course_id = ?", courseID).Delete(&model.Enrollment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Course{}, courseID).Error
}
