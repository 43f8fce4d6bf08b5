package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/qazfinance/academy/internal/dto"
	"github.com/qazfinance/academy/internal/model"
	"github.com/qazfinance/academy/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CourseService is the learner-facing catalog read surface.
type CourseService interface {
	GetAllCourses() ([]dto.CourseSummaryDTO, error)
	GetCourseDetail(slug string, userID uint) (*dto.CourseDetailDTO, error)
	GetLessonForUser(userID, lessonID uint) (*dto.LessonDetailDTO, error)
}

type courseService struct {
	courseRepo     repository.CourseRepository
	lessonRepo     repository.LessonRepository
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ProgressRepository
}

func NewCourseService(
	courseRepo repository.CourseRepository,
	lessonRepo repository.LessonRepository,
	enrollmentRepo repository.EnrollmentRepository,
	progressRepo repository.ProgressRepository,
) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
	}
}

func (s *courseService) GetAllCourses() ([]dto.CourseSummaryDTO, error) {
	courses, err := s.courseRepo.FindAllPublished()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list published courses")
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	dtos := make([]dto.CourseSummaryDTO, 0, len(courses))
	for _, course := range courses {
		var summary dto.CourseSummaryDTO
		if err := copier.Copy(&summary, &course); err != nil {
			return nil, fmt.Errorf("preparing course summary: %w", err)
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

// GetCourseDetail returns the ordered unit/lesson tree. When userID is
// non-zero the response also carries the user's enrollment flag and
// per-lesson progress snapshots.
func (s *courseService) GetCourseDetail(slug string, userID uint) (*dto.CourseDetailDTO, error) {
	course, err := s.courseRepo.FindBySlugWithUnitsAndLessons(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course %q: %w", slug, ErrCourseNotFound)
		}
		return nil, fmt.Errorf("loading course %q: %w", slug, err)
	}

	progressByLesson := map[uint]*model.LessonProgress{}
	enrolled := false
	if userID != 0 {
		enrolled, err = s.enrollmentRepo.Exists(userID, course.ID)
		if err != nil {
			return nil, fmt.Errorf("checking enrollment: %w", err)
		}
		records, err := s.progressRepo.FindAllByUserAndCourse(userID, course.ID)
		if err != nil {
			return nil, fmt.Errorf("loading progress for course %d: %w", course.ID, err)
		}
		for i := range records {
			progressByLesson[records[i].LessonID] = &records[i]
		}
	}

	resp := &dto.CourseDetailDTO{
		ID:          course.ID,
		Title:       course.Title,
		Slug:        course.Slug,
		Description: course.Description,
		Enrolled:    enrolled,
		Units:       make([]dto.UnitDTO, 0, len(course.Units)),
	}
	for _, unit := range course.Units {
		unitDTO := dto.UnitDTO{
			ID:      unit.ID,
			Title:   unit.Title,
			Order:   unit.Order,
			Lessons: make([]dto.LessonSummaryDTO, 0, len(unit.Lessons)),
		}
		for _, lesson := range unit.Lessons {
			lessonDTO := dto.LessonSummaryDTO{
				ID:    lesson.ID,
				Title: lesson.Title,
				Order: lesson.Order,
			}
			if progress, ok := progressByLesson[lesson.ID]; ok {
				p := progressToDTO(progress)
				lessonDTO.Progress = &p
			}
			unitDTO.Lessons = append(unitDTO.Lessons, lessonDTO)
		}
		resp.Units = append(resp.Units, unitDTO)
	}
	return resp, nil
}

// GetLessonForUser returns lesson content with its ordered quiz. Enrollment
// in the owning course is a precondition for lesson access.
func (s *courseService) GetLessonForUser(userID, lessonID uint) (*dto.LessonDetailDTO, error) {
	lesson, err := s.lessonRepo.FindByIDWithQuestionsAndChoices(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lesson %d: %w", lessonID, ErrLessonNotFound)
		}
		return nil, fmt.Errorf("loading lesson %d: %w", lessonID, err)
	}

	courseID, err := s.lessonRepo.CourseIDForLesson(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lesson %d: %w", lessonID, ErrLessonNotFound)
		}
		return nil, fmt.Errorf("resolving course for lesson %d: %w", lessonID, err)
	}
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, fmt.Errorf("loading course %d: %w", courseID, err)
	}
	if !course.Published {
		// Unpublished courses hide their lessons even from enrolled users.
		return nil, fmt.Errorf("course %d is not published: %w", courseID, ErrCourseNotFound)
	}
	enrolled, err := s.enrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("checking enrollment: %w", err)
	}
	if !enrolled {
		return nil, fmt.Errorf("user %d, course %d: %w", userID, courseID, ErrNotEnrolled)
	}

	resp := &dto.LessonDetailDTO{
		ID:         lesson.ID,
		UnitID:     lesson.UnitID,
		Title:      lesson.Title,
		Order:      lesson.Order,
		Objectives: lesson.Objectives,
		Theory:     lesson.Theory,
		CaseStudy:  lesson.CaseStudy,
		Summary:    lesson.Summary,
		Questions:  make([]dto.QuestionDTO, 0, len(lesson.Questions)),
	}
	for _, question := range lesson.Questions {
		questionDTO := dto.QuestionDTO{
			ID:      question.ID,
			Text:    question.Text,
			Order:   question.Order,
			Choices: make([]dto.ChoiceDTO, 0, len(question.Choices)),
		}
		for _, choice := range question.Choices {
			// ChoiceDTO has no correctness field; answers stay hidden.
			questionDTO.Choices = append(questionDTO.Choices, dto.ChoiceDTO{ID: choice.ID, Text: choice.Text})
		}
		resp.Questions = append(resp.Questions, questionDTO)
	}

	if progress, err := s.progressRepo.FindByUserAndLesson(userID, lessonID); err == nil {
		p := progressToDTO(progress)
		resp.Progress = &p
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("loading progress for lesson %d: %w", lessonID, err)
	}

	return resp, nil
}
