package service

import (
	"errors"
	"testing"

	"github.com/qazfinance/academy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quizLesson builds an in-memory lesson with numQuestions questions of two
// choices each. Choice IDs are deterministic: question q has choices
// q*10+1 (wrong) and q*10+2 (correct).
func quizLesson(numQuestions int) *model.Lesson {
	lesson := &model.Lesson{ID: 1}
	for q := uint(1); q <= uint(numQuestions); q++ {
		lesson.Questions = append(lesson.Questions, model.Question{
			ID:       q,
			LessonID: 1,
			Order:    int(q),
			Choices: []model.Choice{
				{ID: q*10 + 1, QuestionID: q},
				{ID: q*10 + 2, QuestionID: q, IsCorrect: true},
			},
		})
	}
	return lesson
}

func TestScore(t *testing.T) {
	tests := []struct {
		name          string
		numQuestions  int
		answers       map[uint]uint
		wantCorrect   int
		wantScore     float64
		wantRecordLen int
	}{
		{
			name:         "all correct",
			numQuestions: 4,
			answers:      map[uint]uint{1: 12, 2: 22, 3: 32, 4: 42},
			wantCorrect:  4, wantScore: 100.0, wantRecordLen: 4,
		},
		{
			name:         "half correct with one wrong and one unanswered",
			numQuestions: 4,
			answers:      map[uint]uint{1: 12, 2: 22, 3: 31},
			wantCorrect:  2, wantScore: 50.0, wantRecordLen: 3,
		},
		{
			name:         "empty submission scores zero",
			numQuestions: 4,
			answers:      map[uint]uint{},
			wantCorrect:  0, wantScore: 0.0, wantRecordLen: 0,
		},
		{
			name:         "nil submission scores zero",
			numQuestions: 3,
			answers:      nil,
			wantCorrect:  0, wantScore: 0.0, wantRecordLen: 0,
		},
		{
			name:         "two thirds rounds up",
			numQuestions: 3,
			answers:      map[uint]uint{1: 12, 2: 22, 3: 31},
			wantCorrect:  2, wantScore: 66.7, wantRecordLen: 3,
		},
		{
			name:         "one third rounds down",
			numQuestions: 3,
			answers:      map[uint]uint{1: 12},
			wantCorrect:  1, wantScore: 33.3, wantRecordLen: 1,
		},
		{
			name:         "exact half at second decimal rounds away from zero",
			numQuestions: 16,
			answers:      map[uint]uint{1: 12}, // 100/16 = 6.25 -> 6.3
			wantCorrect:  1, wantScore: 6.3, wantRecordLen: 1,
		},
		{
			name:         "answers for unknown questions are ignored",
			numQuestions: 2,
			answers:      map[uint]uint{1: 12, 99: 992},
			wantCorrect:  1, wantScore: 50.0, wantRecordLen: 1,
		},
	}

	svc := NewScoringService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Score(quizLesson(tt.numQuestions), tt.answers)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCorrect, result.CorrectCount)
			assert.Equal(t, tt.numQuestions, result.TotalQuestions)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Len(t, result.AnswerRecord, tt.wantRecordLen)
		})
	}
}

func TestScoreNoQuestions(t *testing.T) {
	svc := NewScoringService()

	_, err := svc.Score(&model.Lesson{ID: 7}, map[uint]uint{1: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoQuestions))
}

func TestScoreRecordsOnlySubmittedAnswers(t *testing.T) {
	svc := NewScoringService()
	lesson := quizLesson(3)

	result, err := svc.Score(lesson, map[uint]uint{2: 21})
	require.NoError(t, err)

	assert.Equal(t, map[uint]uint{2: 21}, result.AnswerRecord)
	assert.Equal(t, 0, result.CorrectCount)
}

func TestScoreQuestionWithoutCorrectChoice(t *testing.T) {
	svc := NewScoringService()
	lesson := &model.Lesson{
		ID: 1,
		Questions: []model.Question{
			{ID: 1, Choices: []model.Choice{{ID: 11}, {ID: 12}}},
		},
	}

	// No flagged choice means no answer can be correct, not even a match
	// against the zero value.
	result, err := svc.Score(lesson, map[uint]uint{1: 11})
	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectCount)
	assert.Equal(t, 0.0, result.Score)
}

func TestScoreTakesFirstOfMultipleCorrectChoices(t *testing.T) {
	svc := NewScoringService()
	lesson := &model.Lesson{
		ID: 1,
		Questions: []model.Question{
			{ID: 1, Choices: []model.Choice{
				{ID: 11, IsCorrect: true},
				{ID: 12, IsCorrect: true},
			}},
		},
	}

	result, err := svc.Score(lesson, map[uint]uint{1: 11})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CorrectCount)

	result, err = svc.Score(lesson, map[uint]uint{1: 12})
	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectCount)
}

func TestRoundToOneDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{100, 100},
		{66.6666666, 66.7},
		{33.3333333, 33.3},
		{6.25, 6.3},
		{87.5, 87.5},
		{83.33333333, 83.3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundToOneDecimal(tt.in), "round(%v)", tt.in)
	}
}
