package model

import (
	"time"

	"gorm.io/datatypes"
)

// LessonAttempt is the append-only audit record of one quiz submission.
// Answers holds the submitted question_id -> choice_id mapping as JSON;
// unanswered questions are simply absent. Attempts are never updated or
// deleted, even when the catalog rows they reference go away.
type LessonAttempt struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index:idx_attempts_user_lesson"`
	LessonID    uint           `json:"lesson_id" gorm:"not null;index:idx_attempts_user_lesson"`
	Score       float64        `json:"score" gorm:"not null;default:0"`
	Answers     datatypes.JSON `json:"answers"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime;index"`
}
