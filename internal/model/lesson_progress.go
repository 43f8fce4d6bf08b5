package model

import "time"

// LessonProgress is the single mutable record per (user, lesson).
// BestScore never decreases; Completed always equals BestScore >= 70.0.
type LessonProgress struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID  uint      `json:"lesson_id" gorm:"not null;index;uniqueIndex:idx_progress_user_lesson"`
	BestScore float64   `json:"best_score" gorm:"not null;default:0"`
	LastScore float64   `json:"last_score" gorm:"not null;default:0"`
	Completed bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
