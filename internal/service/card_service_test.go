package service

import (
	"context"
	"errors"
	"testing"

	"cardify/internal/models"
	"cardify/internal/repository"
	"cardify/internal/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cardRepoStub is a stub for repository.CardRepository.
type cardRepoStub struct {
	createFn        func(context.Context, *models.Card) error
	getByOwnerFn    func(context.Context, uint, uint) (*models.Card, error)
	listByOwnerFn   func(context.Context, uint) ([]*models.Card, error)
	updateOwnedFn   func(context.Context, uint, uint, map[string]any) error
	deleteOwnedFn   func(context.Context, uint, uint) error
	resolvePublicFn func(context.Context, string) (*models.Card, error)
	statsByOwnerFn  func(context.Context, uint) (*models.UserStats, error)
}

func (s *cardRepoStub) Create(ctx context.Context, card *models.Card) error {
	return s.createFn(ctx, card)
}
func (s *cardRepoStub) GetByOwner(ctx context.Context, ownerID, cardID uint) (*models.Card, error) {
	return s.getByOwnerFn(ctx, ownerID, cardID)
}
func (s *cardRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Card, error) {
	return s.listByOwnerFn(ctx, ownerID)
}
func (s *cardRepoStub) UpdateOwned(ctx context.Context, ownerID, cardID uint, fields map[string]any) error {
	return s.updateOwnedFn(ctx, ownerID, cardID, fields)
}
func (s *cardRepoStub) DeleteOwned(ctx context.Context, ownerID, cardID uint) error {
	return s.deleteOwnedFn(ctx, ownerID, cardID)
}
func (s *cardRepoStub) ResolvePublic(ctx context.Context, shareLink string) (*models.Card, error) {
	return s.resolvePublicFn(ctx, shareLink)
}
func (s *cardRepoStub) StatsByOwner(ctx context.Context, ownerID uint) (*models.UserStats, error) {
	return s.statsByOwnerFn(ctx, ownerID)
}

func noopCardRepo() *cardRepoStub {
	return &cardRepoStub{
		createFn:        func(_ context.Context, _ *models.Card) error { return nil },
		getByOwnerFn:    func(_ context.Context, _, _ uint) (*models.Card, error) { return &models.Card{}, nil },
		listByOwnerFn:   func(_ context.Context, _ uint) ([]*models.Card, error) { return nil, nil },
		updateOwnedFn:   func(_ context.Context, _, _ uint, _ map[string]any) error { return nil },
		deleteOwnedFn:   func(_ context.Context, _, _ uint) error { return nil },
		resolvePublicFn: func(_ context.Context, _ string) (*models.Card, error) { return &models.Card{}, nil },
		statsByOwnerFn:  func(_ context.Context, _ uint) (*models.UserStats, error) { return &models.UserStats{}, nil },
	}
}

func TestCardService_CreateCard_Defaults(t *testing.T) {
	repo := noopCardRepo()
	var created *models.Card
	repo.createFn = func(_ context.Context, card *models.Card) error {
		created = card
		return nil
	}

	svc := NewCardService(repo)
	card, err := svc.CreateCard(context.Background(), 7, CardInput{
		Message:  "Happy birthday!",
		Category: "birthday",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, uint(7), card.UserID)
	assert.Equal(t, "Birthday Card", card.Title)
	assert.Equal(t, templates.DefaultTemplateID, card.TemplateID)
	assert.Equal(t, templates.DefaultFontFamily, card.FontFamily)
	assert.Equal(t, templates.DefaultAccentColor, card.AccentColor)
	assert.Equal(t, templates.DefaultEnvelopeStyle, card.EnvelopeStyle)
	assert.Equal(t, templates.DefaultEnvelopeColor, card.EnvelopeColor)
	assert.Equal(t, models.CardStatusPublished, card.Status)
	assert.Len(t, card.ShareLink, shareTokenLength)
}

func TestCardService_CreateCard_EmptyCategoryTitle(t *testing.T) {
	svc := NewCardService(noopCardRepo())
	card, err := svc.CreateCard(context.Background(), 1, CardInput{})
	require.NoError(t, err)
	assert.Equal(t, "Greeting Card", card.Title)
}

func TestCardService_CreateCard_KeepsExplicitFields(t *testing.T) {
	svc := NewCardService(noopCardRepo())
	card, err := svc.CreateCard(context.Background(), 1, CardInput{
		Title:         "For Mum",
		Template:      "flower-bouquet",
		Font:          "Playfair Display",
		AccentColor:   "#10b981",
		EnvelopeStyle: "modern",
		EnvelopeColor: "#ffffff",
		Status:        models.CardStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, "For Mum", card.Title)
	assert.Equal(t, "flower-bouquet", card.TemplateID)
	assert.Equal(t, "Playfair Display", card.FontFamily)
	assert.Equal(t, "#10b981", card.AccentColor)
	assert.Equal(t, models.CardStatusDraft, card.Status)
}

func TestCardService_CreateCard_InvalidInput(t *testing.T) {
	svc := NewCardService(noopCardRepo())

	tests := []struct {
		name string
		in   CardInput
	}{
		{"Unknown template", CardInput{Template: "hologram"}},
		{"Unknown status", CardInput{Status: "archived"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCard(context.Background(), 1, tt.in)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestCardService_CreateCard_RetriesOnTokenCollision(t *testing.T) {
	repo := noopCardRepo()
	var tokens []string
	repo.createFn = func(_ context.Context, card *models.Card) error {
		tokens = append(tokens, card.ShareLink)
		if len(tokens) < 3 {
			return repository.ErrShareLinkTaken
		}
		return nil
	}

	svc := NewCardService(repo)
	card, err := svc.CreateCard(context.Background(), 1, CardInput{})
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, tokens[2], card.ShareLink)
	// Each retry mints a fresh token.
	assert.NotEqual(t, tokens[0], tokens[1])
}

func TestCardService_CreateCard_GivesUpAfterRetries(t *testing.T) {
	repo := noopCardRepo()
	calls := 0
	repo.createFn = func(_ context.Context, _ *models.Card) error {
		calls++
		return repository.ErrShareLinkTaken
	}

	svc := NewCardService(repo)
	_, err := svc.CreateCard(context.Background(), 1, CardInput{})
	require.Error(t, err)
	assert.Equal(t, shareTokenRetries, calls)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}

func TestCardService_CreateCard_PropagatesRepoError(t *testing.T) {
	repo := noopCardRepo()
	repo.createFn = func(_ context.Context, _ *models.Card) error {
		return models.NewInternalError(errors.New("db down"))
	}

	svc := NewCardService(repo)
	_, err := svc.CreateCard(context.Background(), 1, CardInput{})
	assert.Error(t, err)
}

func TestCardService_UpdateCard_FullOverwrite(t *testing.T) {
	repo := noopCardRepo()
	var gotOwner, gotCard uint
	var gotFields map[string]any
	repo.updateOwnedFn = func(_ context.Context, ownerID, cardID uint, fields map[string]any) error {
		gotOwner, gotCard, gotFields = ownerID, cardID, fields
		return nil
	}

	svc := NewCardService(repo)
	err := svc.UpdateCard(context.Background(), 7, 3, CardInput{
		Title:    "Edited",
		Message:  "New message",
		Category: "thanks",
		Template: "gift-box",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), gotOwner)
	assert.Equal(t, uint(3), gotCard)
	assert.Equal(t, "Edited", gotFields["title"])
	assert.Equal(t, "gift-box", gotFields["template_id"])
	// Fields absent from the payload are reset to defaults, not kept.
	assert.Equal(t, templates.DefaultFontFamily, gotFields["font_family"])
	assert.Equal(t, models.CardStatusPublished, gotFields["status"])
}

func TestCardService_UpdateCard_NotOwned(t *testing.T) {
	repo := noopCardRepo()
	repo.updateOwnedFn = func(_ context.Context, _, _ uint, _ map[string]any) error {
		return models.NewNotFoundError("Card")
	}

	svc := NewCardService(repo)
	err := svc.UpdateCard(context.Background(), 99, 3, CardInput{})
	assert.True(t, models.IsNotFound(err))
}

func TestCardService_ResolvePublicCard(t *testing.T) {
	repo := noopCardRepo()
	repo.resolvePublicFn = func(_ context.Context, shareLink string) (*models.Card, error) {
		return &models.Card{
			ID:         3,
			UserID:     7,
			Title:      "Congrats",
			Message:    "Well done",
			TemplateID: "gift-box",
			Status:     models.CardStatusPublished,
			ShareLink:  shareLink,
			ViewCount:  11,
		}, nil
	}

	svc := NewCardService(repo)
	pub, err := svc.ResolvePublicCard(context.Background(), "aB3dE5fG7h")
	require.NoError(t, err)
	assert.Equal(t, "Congrats", pub.Title)
	assert.Equal(t, uint(11), pub.ViewCount)
}

func TestNewShareToken(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := newShareToken(shareTokenLength)
		require.NoError(t, err)
		assert.Len(t, token, shareTokenLength)
		for _, r := range token {
			assert.Contains(t, shareAlphabet, string(r))
		}
		assert.False(t, seen[token], "token %q repeated", token)
		seen[token] = true
	}
}

func TestDefaultTitle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Greeting Card", defaultTitle(""))
	assert.Equal(t, "Birthday Card", defaultTitle("birthday"))
	assert.Equal(t, "Thanks Card", defaultTitle("thanks"))
}
