package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"cardify/internal/models"
	"cardify/internal/observability"
	"cardify/internal/repository"
	"cardify/internal/templates"
)

const (
	shareTokenLength = 10
	shareTokenRetries = 5

	maxTitleLen   = 120
	maxMessageLen = 5000
	maxNameLen    = 80
)

type CardService struct {
	cardRepo repository.CardRepository
}

func NewCardService(cardRepo repository.CardRepository) *CardService {
	return &CardService{cardRepo: cardRepo}
}

// CardInput carries the writable card fields for both create and update.
type CardInput struct {
	Title         string `json:"title"`
	Message       string `json:"message"`
	RecipientName string `json:"recipientName"`
	SenderName    string `json:"senderName"`
	Category      string `json:"category"`
	Template      string `json:"template"`
	Font          string `json:"font"`
	AccentColor   string `json:"accentColor"`
	EnvelopeStyle string `json:"envelopeStyle"`
	EnvelopeColor string `json:"envelopeColor"`
	Status        string `json:"status"`
}

func (in *CardInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	in.RecipientName = strings.TrimSpace(in.RecipientName)
	in.SenderName = strings.TrimSpace(in.SenderName)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))

	if len(in.Title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 120 characters)")
	}
	if len(in.Message) > maxMessageLen {
		return models.NewValidationError("Message too long (max 5000 characters)")
	}
	if len(in.RecipientName) > maxNameLen || len(in.SenderName) > maxNameLen {
		return models.NewValidationError("Name too long (max 80 characters)")
	}

	if in.Template == "" {
		in.Template = templates.DefaultTemplateID
	} else if !templates.IsValid(in.Template) {
		return models.NewValidationError("Unknown card template")
	}

	switch in.Status {
	case "":
		in.Status = models.CardStatusPublished
	case models.CardStatusDraft, models.CardStatusPublished:
	default:
		return models.NewValidationError("Status must be draft or published")
	}

	if in.Font == "" {
		in.Font = templates.DefaultFontFamily
	}
	if in.AccentColor == "" {
		in.AccentColor = templates.DefaultAccentColor
	}
	if in.EnvelopeStyle == "" {
		in.EnvelopeStyle = templates.DefaultEnvelopeStyle
	}
	if in.EnvelopeColor == "" {
		in.EnvelopeColor = templates.DefaultEnvelopeColor
	}
	if in.Title == "" {
		in.Title = defaultTitle(in.Category)
	}
	return nil
}

func (s *CardService) CreateCard(ctx context.Context, userID uint, in CardInput) (*models.Card, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	card := &models.Card{
		UserID:        userID,
		Title:         in.Title,
		Message:       in.Message,
		RecipientName: in.RecipientName,
		SenderName:    in.SenderName,
		Category:      in.Category,
		TemplateID:    in.Template,
		FontFamily:    in.Font,
		AccentColor:   in.AccentColor,
		EnvelopeStyle: in.EnvelopeStyle,
		EnvelopeColor: in.EnvelopeColor,
		Status:        in.Status,
	}

	for attempt := 0; attempt < shareTokenRetries; attempt++ {
		token, err := newShareToken(shareTokenLength)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		card.ShareLink = token

		err = s.cardRepo.Create(ctx, card)
		if err == nil {
			observability.CardsCreated.WithLabelValues(card.Category).Inc()
			return card, nil
		}
		if !errors.Is(err, repository.ErrShareLinkTaken) {
			return nil, err
		}
		observability.ShareTokenCollisions.Inc()
	}
	return nil, models.NewInternalError(fmt.Errorf("could not mint a unique share link after %d attempts", shareTokenRetries))
}

func (s *CardService) GetCard(ctx context.Context, userID, cardID uint) (*models.Card, error) {
	return s.cardRepo.GetByOwner(ctx, userID, cardID)
}

func (s *CardService) ListCards(ctx context.Context, userID uint) ([]*models.Card, error) {
	return s.cardRepo.ListByOwner(ctx, userID)
}

// UpdateCard overwrites every writable field with the incoming payload.
// Missing fields fall back to the catalog defaults rather than keeping
// the stored value, matching the save flow in the editor.
func (s *CardService) UpdateCard(ctx context.Context, userID, cardID uint, in CardInput) error {
	if err := in.normalize(); err != nil {
		return err
	}

	fields := map[string]any{
		"title":          in.Title,
		"message":        in.Message,
		"recipient_name": in.RecipientName,
		"sender_name":    in.SenderName,
		"category":       in.Category,
		"template_id":    in.Template,
		"font_family":    in.Font,
		"accent_color":   in.AccentColor,
		"envelope_style": in.EnvelopeStyle,
		"envelope_color": in.EnvelopeColor,
		"status":         in.Status,
	}
	return s.cardRepo.UpdateOwned(ctx, userID, cardID, fields)
}

func (s *CardService) DeleteCard(ctx context.Context, userID, cardID uint) error {
	return s.cardRepo.DeleteOwned(ctx, userID, cardID)
}

// ResolvePublicCard looks up a published card by its share token and
// counts the view. The returned projection carries no owner identity.
func (s *CardService) ResolvePublicCard(ctx context.Context, shareLink string) (*models.PublicCard, error) {
	card, err := s.cardRepo.ResolvePublic(ctx, shareLink)
	if err != nil {
		return nil, err
	}
	observability.PublicCardViews.WithLabelValues(card.TemplateID).Inc()
	return card.Public(), nil
}

func (s *CardService) GetStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	return s.cardRepo.StatsByOwner(ctx, userID)
}

func defaultTitle(category string) string {
	if category == "" {
		return "Greeting Card"
	}
	r, size := utf8.DecodeRuneInString(category)
	return fmt.Sprintf("%c%s Card", unicode.ToUpper(r), category[size:])
}

const shareAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func newShareToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = shareAlphabet[int(b[i])%len(shareAlphabet)]
	}
	return string(b), nil
}
