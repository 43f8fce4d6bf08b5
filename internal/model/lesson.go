package model

import (
	"time"

	"gorm.io/gorm"
)

// Lesson content fields hold rich text (basic HTML); the scoring flow never
// interprets them.
type Lesson struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UnitID     uint           `json:"unit_id" gorm:"not null;index;uniqueIndex:idx_lessons_unit_order"`
	Title      string         `json:"title" gorm:"not null"`
	Order      int            `json:"order" gorm:"not null;uniqueIndex:idx_lessons_unit_order"`
	Objectives string         `json:"objectives,omitempty" gorm:"type:text"`
	Theory     string         `json:"theory,omitempty" gorm:"type:text"`
	CaseStudy  string         `json:"case_study,omitempty" gorm:"type:text"`
	Summary    string         `json:"summary,omitempty" gorm:"type:text"`
	Questions  []Question     `json:"questions,omitempty" gorm:"foreignKey:LessonID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
