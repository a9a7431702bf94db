package repository

import (
	"context"
	"errors"

	"cardify/internal/cache"
	"cardify/internal/models"
	"cardify/internal/observability"

	"gorm.io/gorm"
)

// CardRepository defines persistence operations for cards. Owner-facing
// reads and writes are always scoped by owner id; a missing row and a row
// owned by someone else are both reported as NotFound.
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	GetByOwner(ctx context.Context, ownerID, cardID uint) (*models.Card, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*models.Card, error)
	UpdateOwned(ctx context.Context, ownerID, cardID uint, fields map[string]any) error
	DeleteOwned(ctx context.Context, ownerID, cardID uint) error
	ResolvePublic(ctx context.Context, shareLink string) (*models.Card, error)
	StatsByOwner(ctx context.Context, ownerID uint) (*models.UserStats, error)
}

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	defer observability.TrackQuery("create", "cards")()

	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		if isUniqueConstraintError(err) {
			// The only unique column on cards is share_link; the caller
			// re-mints the token and retries.
			return ErrShareLinkTaken
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUserCards(ctx, card.UserID)
	return nil
}

// ErrShareLinkTaken signals a share token collision on insert.
var ErrShareLinkTaken = errors.New("share link already taken")

func (r *cardRepository) GetByOwner(ctx context.Context, ownerID, cardID uint) (*models.Card, error) {
	defer observability.TrackQuery("get", "cards")()

	var card models.Card
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID, ownerID).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Card")
		}
		return nil, models.NewInternalError(err)
	}
	return &card, nil
}

func (r *cardRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Card, error) {
	defer observability.TrackQuery("list", "cards")()

	var cards []*models.Card
	key := cache.UserCardsKey(ownerID)
	err := cache.Aside(ctx, key, &cards, cache.UserCardsTTL, func() error {
		if err := r.db.WithContext(ctx).
			Where("user_id = ?", ownerID).
			Order("created_at DESC").
			Find(&cards).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *cardRepository) UpdateOwned(ctx context.Context, ownerID, cardID uint, fields map[string]any) error {
	defer observability.TrackQuery("update", "cards")()

	res := r.db.WithContext(ctx).
		Model(&models.Card{}).
		Where("id = ? AND user_id = ?", cardID, ownerID).
		Updates(fields)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Card")
	}
	cache.InvalidateUserCards(ctx, ownerID)
	return nil
}

func (r *cardRepository) DeleteOwned(ctx context.Context, ownerID, cardID uint) error {
	defer observability.TrackQuery("delete", "cards")()

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID, ownerID).
		Delete(&models.Card{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Card")
	}
	cache.InvalidateUserCards(ctx, ownerID)
	return nil
}

// ResolvePublic increments the view counter and returns the card in one
// owner-less lookup. The increment is a single UPDATE with a relative
// expression so concurrent viewers never lose a count; zero affected rows
// means the token is unknown, unpublished or deleted, all reported as the
// same NotFound.
func (r *cardRepository) ResolvePublic(ctx context.Context, shareLink string) (*models.Card, error) {
	defer observability.TrackQuery("resolve_public", "cards")()

	res := r.db.WithContext(ctx).
		Model(&models.Card{}).
		Where("share_link = ? AND status = ?", shareLink, models.CardStatusPublished).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Card")
	}

	var card models.Card
	if err := r.db.WithContext(ctx).
		Where("share_link = ?", shareLink).
		First(&card).Error; err != nil {
		// The card can be deleted between the increment and this read.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Card")
		}
		return nil, models.NewInternalError(err)
	}
	return &card, nil
}

func (r *cardRepository) StatsByOwner(ctx context.Context, ownerID uint) (*models.UserStats, error) {
	defer observability.TrackQuery("stats", "cards")()

	type row struct {
		Status string
		Count  int64
		Views  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Card{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(view_count), 0) as views").
		Where("user_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	stats := &models.UserStats{}
	for _, r := range rows {
		stats.TotalCards += r.Count
		stats.TotalViews += r.Views
		switch r.Status {
		case models.CardStatusPublished:
			stats.Published += r.Count
		case models.CardStatusDraft:
			stats.Drafts += r.Count
		}
	}
	return stats, nil
}
