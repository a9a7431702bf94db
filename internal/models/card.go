package models

import (
	"time"

	"gorm.io/gorm"
)

// Card status values. Only published cards are visible on the public path.
const (
	CardStatusDraft     = "draft"
	CardStatusPublished = "published"
)

// Card represents a greeting card owned by a user. The share link is minted
// once at creation and never changes; it is the only identifier public
// viewers can use.
type Card struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	Title         string         `json:"title"`
	Message       string         `gorm:"type:text" json:"message"`
	RecipientName string         `json:"recipientName"`
	SenderName    string         `json:"senderName"`
	Category      string         `json:"category"`
	TemplateID    string         `json:"template"`
	FontFamily    string         `json:"font"`
	AccentColor   string         `json:"accentColor"`
	EnvelopeStyle string         `json:"envelopeStyle"`
	EnvelopeColor string         `json:"envelopeColor"`
	Status        string         `gorm:"not null;default:published" json:"status"`
	ShareLink     string         `gorm:"uniqueIndex;not null" json:"shareLink"`
	ViewCount     uint           `gorm:"not null;default:0" json:"viewCount"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// PublicCard is the read-only projection returned to unauthenticated
// viewers. The owner's user id, status and timestamps never cross this
// boundary.
type PublicCard struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	RecipientName string `json:"recipientName"`
	SenderName    string `json:"senderName"`
	Category      string `json:"category"`
	TemplateID    string `json:"template"`
	FontFamily    string `json:"font"`
	AccentColor   string `json:"accentColor"`
	EnvelopeStyle string `json:"envelopeStyle"`
	EnvelopeColor string `json:"envelopeColor"`
	ViewCount     uint   `json:"viewCount"`
}

// Public returns the public projection of the card.
func (c *Card) Public() *PublicCard {
	return &PublicCard{
		ID:            c.ID,
		Title:         c.Title,
		Message:       c.Message,
		RecipientName: c.RecipientName,
		SenderName:    c.SenderName,
		Category:      c.Category,
		TemplateID:    c.TemplateID,
		FontFamily:    c.FontFamily,
		AccentColor:   c.AccentColor,
		EnvelopeStyle: c.EnvelopeStyle,
		EnvelopeColor: c.EnvelopeColor,
		ViewCount:     c.ViewCount,
	}
}
