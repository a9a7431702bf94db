// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the Cardify application.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Cards     []Card         `gorm:"foreignKey:UserID" json:"cards,omitempty"`
}

// UserStats aggregates card counts and views for a user's dashboard.
type UserStats struct {
	TotalCards int64 `json:"totalCards"`
	Published  int64 `json:"published"`
	Drafts     int64 `json:"drafts"`
	TotalViews int64 `json:"totalViews"`
}
