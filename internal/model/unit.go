package model

import (
	"time"

	"gorm.io/gorm"
)

type Unit struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CourseID  uint           `json:"course_id" gorm:"not null;index;uniqueIndex:idx_units_course_order"`
	Title     string         `json:"title" gorm:"not null"`
	Order     int            `json:"order" gorm:"not null;uniqueIndex:idx_units_course_order"`
	Lessons   []Lesson       `json:"lessons,omitempty" gorm:"foreignKey:UnitID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
