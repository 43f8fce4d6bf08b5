package service

import (
	"errors"
	"fmt"

	"github.com/qazfinance/academy/internal/dto"
	"github.com/qazfinance/academy/internal/model"
	"github.com/qazfinance/academy/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminCourseService is the catalog write path. It enforces at creation
// time what the scoring engine otherwise only tolerates defensively:
// unique orders within each parent and at most one correct choice per
// question.
type AdminCourseService interface {
	CreateCourse(req dto.CourseCreateDTO) (*dto.AdminCourseDTO, error)
	DeleteCourse(courseID uint) error
}

type adminCourseService struct {
	courseRepo repository.CourseRepository
	db         *gorm.DB
}

func NewAdminCourseService(courseRepo repository.CourseRepository, db *gorm.DB) AdminCourseService {
	return &adminCourseService{courseRepo: courseRepo, db: db}
}

func (s *adminCourseService) CreateCourse(req dto.CourseCreateDTO) (*dto.AdminCourseDTO, error) {
	courseModel, err := buildCourseTree(req)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(courseModel); err != nil {
		log.Error().Err(err).Str("slug", req.Slug).Msg("Failed to create course")
		return nil, fmt.Errorf("database error creating course %q: %w", req.Slug, err)
	}

	log.Info().Uint("courseID", courseModel.ID).Str("slug", courseModel.Slug).Msg("Course created")
	return courseTreeToDTO(courseModel), nil
}

func (s *adminCourseService) DeleteCourse(courseID uint) error {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("course %d: %w", courseID, ErrCourseNotFound)
		}
		return fmt.Errorf("loading course %d: %w", courseID, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.courseRepo.DeleteCascade(tx, courseID)
	})
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("Cascading course delete failed")
		return fmt.Errorf("deleting course %d: %w", courseID, err)
	}

	log.Info().Uint("courseID", courseID).Msg("Course deleted; attempts and progress kept as archived history")
	return nil
}

func buildCourseTree(req dto.CourseCreateDTO) (*model.Course, error) {
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	course := &model.Course{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Published:   published,
	}

	unitOrders := make(map[int]bool)
	for _, unitDTO := range req.Units {
		if unitOrders[unitDTO.Order] {
			return nil, fmt.Errorf("duplicate unit order %d in course %q", unitDTO.Order, req.Slug)
		}
		unitOrders[unitDTO.Order] = true

		unit := model.Unit{Title: unitDTO.Title, Order: unitDTO.Order}

		lessonOrders := make(map[int]bool)
		for _, lessonDTO := range unitDTO.Lessons {
			if lessonOrders[lessonDTO.Order] {
				return nil, fmt.Errorf("duplicate lesson order %d in unit %q", lessonDTO.Order, unitDTO.Title)
			}
			lessonOrders[lessonDTO.Order] = true

			lesson := model.Lesson{
				Title:      lessonDTO.Title,
				Order:      lessonDTO.Order,
				Objectives: lessonDTO.Objectives,
				Theory:     lessonDTO.Theory,
				CaseStudy:  lessonDTO.CaseStudy,
				Summary:    lessonDTO.Summary,
			}

			questionOrders := make(map[int]bool)
			for _, questionDTO := range lessonDTO.Questions {
				if questionOrders[questionDTO.Order] {
					return nil, fmt.Errorf("duplicate question order %d in lesson %q", questionDTO.Order, lessonDTO.Title)
				}
				questionOrders[questionDTO.Order] = true

				question := model.Question{Text: questionDTO.Text, Order: questionDTO.Order}
				correctCount := 0
				for _, choiceDTO := range questionDTO.Choices {
					if choiceDTO.IsCorrect {
						correctCount++
					}
					question.Choices = append(question.Choices, model.Choice{
						Text:      choiceDTO.Text,
						IsCorrect: choiceDTO.IsCorrect,
					})
				}
				if correctCount > 1 {
					return nil, fmt.Errorf("question %d in lesson %q has %d choices flagged correct; at most one is allowed",
						questionDTO.Order, lessonDTO.Title, correctCount)
				}
				if correctCount == 0 && len(questionDTO.Choices) > 0 {
					log.Warn().
						Str("lesson", lessonDTO.Title).
						Int("questionOrder", questionDTO.Order).
						Msg("Question has no correct choice; it can never be answered correctly")
				}
				lesson.Questions = append(lesson.Questions, question)
			}
			unit.Lessons = append(unit.Lessons, lesson)
		}
		course.Units = append(course.Units, unit)
	}
	return course, nil
}

func courseTreeToDTO(course *model.Course) *dto.AdminCourseDTO {
	resp := &dto.AdminCourseDTO{
		ID:          course.ID,
		Title:       course.Title,
		Slug:        course.Slug,
		Description: course.Description,
		Published:   course.Published,
		Units:       make([]dto.AdminUnitDTO, 0, len(course.Units)),
	}
	for _, unit := range course.Units {
		unitDTO := dto.AdminUnitDTO{ID: unit.ID, Title: unit.Title, Order: unit.Order}
		for _, lesson := range unit.Lessons {
			lessonDTO := dto.AdminLessonDTO{ID: lesson.ID, Title: lesson.Title, Order: lesson.Order}
			for _, question := range lesson.Questions {
				questionDTO := dto.AdminQuestionDTO{ID: question.ID, Text: question.Text, Order: question.Order}
				for _, choice := range question.Choices {
					questionDTO.Choices = append(questionDTO.Choices, dto.AdminChoiceDTO{
						ID:        choice.ID,
						Text:      choice.Text,
						IsCorrect: choice.IsCorrect,
					})
				}
				lessonDTO.Questions = append(lessonDTO.Questions, questionDTO)
			}
			unitDTO.Lessons = append(unitDTO.Lessons, lessonDTO)
		}
		resp.Units = append(resp.Units, unitDTO)
	}
	return resp
}
