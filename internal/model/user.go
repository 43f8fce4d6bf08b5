package model

import (
	"time"

	"gorm.io/gorm"
)

// User is owned by the accounts side of the platform; this service only
// reads identities and writes the derived Rating field.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex"`
	FullName  string         `json:"full_name,omitempty"`
	Rating    float64        `json:"rating" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
