package service

import (
	"fmt"

	"github.com/qazfinance/academy/internal/repository"
	"gorm.io/gorm"
)

// RatingService owns the derived users.rating field: the arithmetic mean of
// best_score across all of a user's progress records, fully recomputed on
// every scoring event. A user with no progress records has rating 0.0, not
// null. Runs inside the caller's transaction so the rating never trails the
// attempt that triggered it.
type RatingService interface {
	Recompute(tx *gorm.DB, userID uint) (float64, error)
}

type ratingService struct {
	progressRepo repository.ProgressRepository
	userRepo     repository.UserRepository
}

func NewRatingService(progressRepo repository.ProgressRepository, userRepo repository.UserRepository) RatingService {
	return &ratingService{progressRepo: progressRepo, userRepo: userRepo}
}

func (s *ratingService) Recompute(tx *gorm.DB, userID uint) (float64, error) {
	rating, err := s.progressRepo.AverageBestScore(tx, userID)
	if err != nil {
		return 0, fmt.Errorf("aggregating best scores for user %d: %w", userID, err)
	}
	if err := s.userRepo.UpdateRating(tx, userID, rating); err != nil {
		return 0, fmt.Errorf("persisting rating for user %d: %w", userID, err)
	}
	return rating, nil
}
