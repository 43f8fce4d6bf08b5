package model

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	// No column default: a default tag makes GORM omit false from the
	// INSERT, which would silently publish drafts. Writers always set the
	// value explicitly.
	Published bool `json:"published" gorm:"not null"`
	Units       []Unit         `json:"units,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
