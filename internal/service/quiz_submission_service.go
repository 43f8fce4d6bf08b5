package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/qazfinance/academy/internal/dto"
	"github.com/qazfinance/academy/internal/model"
	"github.com/qazfinance/academy/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizSubmissionService orchestrates one quiz submission end to end:
// enrollment gate, validation, scoring, attempt append, progress upsert and
// rating recompute. All writes happen in a single transaction; a failure
// anywhere after scoring rolls everything back.
type QuizSubmissionService interface {
	SubmitQuiz(userID, lessonID uint, answers map[uint]uint) (*dto.QuizResultDTO, error)
	GetUserAttemptsForLesson(userID, lessonID uint) ([]dto.AttemptSummaryDTO, error)
}

type quizSubmissionService struct {
	courseRepo     repository.CourseRepository
	lessonRepo     repository.LessonRepository
	enrollmentRepo repository.EnrollmentRepository
	attemptRepo    repository.AttemptRepository
	progressRepo   repository.ProgressRepository
	scoring        ScoringService
	rating         RatingService
	db             *gorm.DB
}

func NewQuizSubmissionService(
	courseRepo repository.CourseRepository,
	lessonRepo repository.LessonRepository,
	enrollmentRepo repository.EnrollmentRepository,
	attemptRepo repository.AttemptRepository,
	progressRepo repository.ProgressRepository,
	scoring ScoringService,
	rating RatingService,
	db *gorm.DB,
) QuizSubmissionService {
	return &quizSubmissionService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		attemptRepo:    attemptRepo,
		progressRepo:   progressRepo,
		scoring:        scoring,
		rating:         rating,
		db:             db,
	}
}

func (s *quizSubmissionService) SubmitQuiz(userID, lessonID uint, answers map[uint]uint) (*dto.QuizResultDTO, error) {
	// Validation happens before any write, so every failure on this path
	// leaves the store untouched.
	lesson, err := s.lessonRepo.FindByIDWithQuestionsAndChoices(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lesson %d: %w", lessonID, ErrLessonNotFound)
		}
		log.Error().Err(err).Uint("lessonID", lessonID).Msg("SubmitQuiz: failed to load lesson")
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
		return nil, fmt.Errorf("course %d is not published: %w", courseID, ErrCourseNotFound)
	}

	enrolled, err := s.enrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("checking enrollment for user %d in course %d: %w", userID, courseID, err)
	}
	if !enrolled {
		return nil, fmt.Errorf("user %d, course %d: %w", userID, courseID, ErrNotEnrolled)
	}

	result, err := s.scoring.Score(lesson, answers)
	if err != nil {
		return nil, err
	}

	answersJSON, err := json.Marshal(result.AnswerRecord)
	if err != nil {
		return nil, fmt.Errorf("encoding answer record: %w", err)
	}

	attempt := model.LessonAttempt{
		UserID:   userID,
		LessonID: lessonID,
		Score:    result.Score,
		Answers:  datatypes.JSON(answersJSON),
	}

	var (
		progress *model.LessonProgress
		rating   float64
	)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.attemptRepo.Create(tx, &attempt); err != nil {
			return fmt.Errorf("appending attempt: %w", err)
		}
		progress, err = s.progressRepo.UpsertScore(tx, userID, lessonID, result.Score, CompletionThreshold)
		if err != nil {
			return fmt.Errorf("updating progress: %w", err)
		}
		rating, err = s.rating.Recompute(tx, userID)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).
			Uint("userID", userID).
			Uint("lessonID", lessonID).
			Msg("SubmitQuiz: submission transaction rolled back")
		return nil, err
	}

	log.Info().
		Uint("userID", userID).
		Uint("lessonID", lessonID).
		Uint("attemptID", attempt.ID).
		Float64("score", result.Score).
		Float64("bestScore", progress.BestScore).
		Msg("Quiz submission recorded")

	return &dto.QuizResultDTO{
		AttemptID:      attempt.ID,
		LessonID:       lessonID,
		Score:          result.Score,
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		Progress:       progressToDTO(progress),
		Rating:         rating,
	}, nil
}

func (s *quizSubmissionService) GetUserAttemptsForLesson(userID, lessonID uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUserAndLesson(userID, lessonID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("lessonID", lessonID).Msg("Failed to list attempts")
		return nil, fmt.Errorf("fetching attempts for lesson %d: %w", lessonID, err)
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		summary := dto.AttemptSummaryDTO{
			ID:          attempt.ID,
			LessonID:    attempt.LessonID,
			Score:       attempt.Score,
			SubmittedAt: attempt.SubmittedAt,
		}
		if len(attempt.Answers) > 0 {
			if err := json.Unmarshal(attempt.Answers, &summary.Answers); err != nil {
				log.Warn().Err(err).Uint("attemptID", attempt.ID).Msg("Attempt has an unreadable answers blob")
			}
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func progressToDTO(progress *model.LessonProgress) dto.ProgressDTO {
	return dto.ProgressDTO{
		LessonID:  progress.LessonID,
		BestScore: progress.BestScore,
		LastScore: progress.LastScore,
		Completed: progress.Completed,
		UpdatedAt: progress.UpdatedAt,
	}
}
