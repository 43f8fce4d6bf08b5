package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/qazfinance/academy/internal/dto"
	"github.com/qazfinance/academy/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EnrollmentService is the write side of enrollment plus the gate the quiz
// workflow authorizes against. Enrolling twice is a no-op.
type EnrollmentService interface {
	Enroll(userID uint, courseSlug string) (*dto.EnrollmentDTO, error)
	IsEnrolled(userID, courseID uint) (bool, error)
}

type enrollmentService struct {
	courseRepo     repository.CourseRepository
	userRepo       repository.UserRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewEnrollmentService(
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	enrollmentRepo repository.EnrollmentRepository,
) EnrollmentService {
	return &enrollmentService{
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *enrollmentService) Enroll(userID uint, courseSlug string) (*dto.EnrollmentDTO, error) {
	course, err := s.courseRepo.FindBySlug(courseSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course %q: %w", courseSlug, ErrCourseNotFound)
		}
		return nil, fmt.Errorf("loading course %q: %w", courseSlug, err)
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("loading user %d: %w", userID, err)
	}

	enrollment, err := s.enrollmentRepo.GetOrCreate(userID, course.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("courseID", course.ID).Msg("Failed to enroll user")
		return nil, fmt.Errorf("enrolling user %d in course %d: %w", userID, course.ID, err)
	}

	var resp dto.EnrollmentDTO
	if err := copier.Copy(&resp, enrollment); err != nil {
		return nil, fmt.Errorf("preparing enrollment response: %w", err)
	}
	return &resp, nil
}

func (s *enrollmentService) IsEnrolled(userID, courseID uint) (bool, error) {
	return s.enrollmentRepo.Exists(userID, courseID)
}
