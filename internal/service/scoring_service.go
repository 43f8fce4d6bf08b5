package service

import (
	"fmt"
	"math"

	"github.com/qazfinance/academy/internal/model"
	"github.com/rs/zerolog/log"
)

// CompletionThreshold is the best-score cutoff at which a lesson counts as
// completed.
const CompletionThreshold float64 = 70.0

// ScoreResult is the outcome of scoring one submission. AnswerRecord holds
// only the question->choice entries the learner actually submitted for
// questions belonging to the lesson; unanswered questions are omitted.
type ScoreResult struct {
	CorrectCount   int
	TotalQuestions int
	Score          float64
	AnswerRecord   map[uint]uint
}

// ScoringService computes a percentage score for a lesson submission. It is
// a pure function over the loaded lesson and the submitted answers; callers
// own persistence and transactions.
type ScoringService interface {
	Score(lesson *model.Lesson, answers map[uint]uint) (*ScoreResult, error)
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

func (s *scoringService) Score(lesson *model.Lesson, answers map[uint]uint) (*ScoreResult, error) {
	if len(lesson.Questions) == 0 {
		return nil, fmt.Errorf("lesson %d: %w", lesson.ID, ErrNoQuestions)
	}

	result := &ScoreResult{
		TotalQuestions: len(lesson.Questions),
		AnswerRecord:   make(map[uint]uint),
	}

	for _, question := range lesson.Questions {
		correctChoiceID, flagged := correctChoice(question)
		if flagged > 1 {
			log.Warn().
				Uint("lessonID", lesson.ID).
				Uint("questionID", question.ID).
				Int("flaggedCorrect", flagged).
				Msg("Question has more than one choice flagged correct; using the first")
		}

		choiceID, answered := answers[question.ID]
		if !answered {
			continue
		}
		result.AnswerRecord[question.ID] = choiceID

		if flagged > 0 && choiceID == correctChoiceID {
			result.CorrectCount++
		}
	}

	result.Score = roundToOneDecimal(100 * float64(result.CorrectCount) / float64(result.TotalQuestions))
	return result, nil
}

// correctChoice returns the first choice flagged correct, in insertion
// order, plus how many were flagged in total. A question with no flagged
// choice can never be answered correctly.
func correctChoice(question model.Question) (uint, int) {
	var first uint
	flagged := 0
	for _, choice := range question.Choices {
		if choice.IsCorrect {
			if flagged == 0 {
				first = choice.ID
			}
			flagged++
		}
	}
	return first, flagged
}

// roundToOneDecimal rounds half away from zero, so 66.65 becomes 66.7
// regardless of platform rounding defaults.
func roundToOneDecimal(x float64) float64 {
	return math.Round(x*10) / 10
}
