package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	LessonID  uint           `json:"lesson_id" gorm:"not null;index;uniqueIndex:idx_questions_lesson_order"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Order     int            `json:"order" gorm:"not null;uniqueIndex:idx_questions_lesson_order"`
	Choices   []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
