package dto

import "time"

// SubmitQuizRequest is one full quiz submission for a lesson. Answers maps
// question ID to the selected choice ID; questions the learner skipped are
// simply absent from the map.
type SubmitQuizRequest struct {
	UserID  uint          `json:"user_id" binding:"required"`
	Answers map[uint]uint `json:"answers"`
}

type ProgressDTO struct {
	LessonID  uint      `json:"lesson_id"`
	BestScore float64   `json:"best_score"`
	LastScore float64   `json:"last_score"`
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuizResultDTO is the submission response: the computed score plus the
// progress snapshot and user rating as they stand after this attempt.
type QuizResultDTO struct {
	AttemptID      uint        `json:"attempt_id"`
	LessonID       uint        `json:"lesson_id"`
	Score          float64     `json:"score"`
	CorrectCount   int         `json:"correct_count"`
	TotalQuestions int         `json:"total_questions"`
	Progress       ProgressDTO `json:"progress"`
	Rating         float64     `json:"rating"`
}

type AttemptSummaryDTO struct {
	ID          uint          `json:"id"`
	LessonID    uint          `json:"lesson_id"`
	Score       float64       `json:"score"`
	Answers     map[uint]uint `json:"answers,omitempty"`
	SubmittedAt time.Time     `json:"submitted_at"`
}
