package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"cardify/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestCardRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCardRepository(db)
	ctx := context.Background()

	card := &models.Card{
		UserID:    1,
		Title:     "Birthday Card",
		ShareLink: "aB3dE5fG7h",
		Status:    models.CardStatusPublished,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "cards"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, card)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Create_ShareLinkTaken(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCardRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "cards"`)).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_cards_share_link"`))
	mock.ExpectRollback()

	err := repo.Create(ctx, &models.Card{UserID: 1, ShareLink: "aB3dE5fG7h"})
	assert.ErrorIs(t, err, ErrShareLinkTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_GetByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCardRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		ownerID       uint
		cardID        uint
		mockBehavior  func()
		expectedTitle string
		wantNotFound  bool
	}{
		{
			name:    "Success",
			ownerID: 10,
			cardID:  1,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "user_id", "title"}).
					AddRow(1, 10, "Birthday Card")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cards" WHERE (id = $1 AND user_id = $2)`)).
					WithArgs(1, 10, 1).
					WillReturnRows(rows)
			},
			expectedTitle: "Birthday Card",
		},
		{
			// A card that exists but belongs to someone else yields the
			// same NotFound as a card that does not exist.
			name:    "Not Owned",
			ownerID: 99,
			cardID:  1,
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cards" WHERE (id = $1 AND user_id = $2)`)).
					WithArgs(1, 99, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			wantNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			card, err := repo.GetByOwner(ctx, tt.ownerID, tt.cardID)

			if tt.wantNotFound {
				assert.True(t, models.IsNotFound(err))
				assert.Nil(t, card)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTitle, card.Title)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCardRepository_ListByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCardRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "title"}).
		AddRow(2, 10, "Newest").
		AddRow(1, 10, "Oldest")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cards" WHERE user_id = $1`)).
		WithArgs(10).
		WillReturnRows(rows)

	cards, err := repo.ListByOwner(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, "Newest", cards[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_UpdateOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCardRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cards" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateOwned(ctx, 10, 1, map[string]any{"title": "Updated"})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Owned", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cards" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.UpdateOwned(ctx, 99, 1, map[string]any{"title": "Updated"})
		assert.True(t, models.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCardRepository_DeleteOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCardRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cards" SET "deleted_at"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteOwned(ctx, 10, 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already Deleted", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cards" SET "deleted_at"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeleteOwned(ctx, 10, 1)
		assert.True(t, models.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCardRepository_ResolvePublic(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCardRepository(db)
	ctx := context.Background()

	t.Run("Success Increments Then Reads", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cards" SET "view_count"=view_count + $1`)).
			WithArgs(1, "aB3dE5fG7h", models.CardStatusPublished).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rows := sqlmock.NewRows([]string{"id", "share_link", "status", "view_count"}).
			AddRow(1, "aB3dE5fG7h", models.CardStatusPublished, 6)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cards" WHERE share_link = $1`)).
			WithArgs("aB3dE5fG7h", 1).
			WillReturnRows(rows)

		card, err := repo.ResolvePublic(ctx, "aB3dE5fG7h")
		assert.NoError(t, err)
		assert.Equal(t, uint(6), card.ViewCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Draft Or Unknown Token", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cards" SET "view_count"=view_count + $1`)).
			WithArgs(1, "unknown", models.CardStatusPublished).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		card, err := repo.ResolvePublic(ctx, "unknown")
		assert.True(t, models.IsNotFound(err))
		assert.Nil(t, card)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deleted Between Increment And Read", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cards" SET "view_count"=view_count + $1`)).
			WithArgs(1, "aB3dE5fG7h", models.CardStatusPublished).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cards" WHERE share_link = $1`)).
			WithArgs("aB3dE5fG7h", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		card, err := repo.ResolvePublic(ctx, "aB3dE5fG7h")
		assert.True(t, models.IsNotFound(err))
		assert.Nil(t, card)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCardRepository_StatsByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCardRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"status", "count", "views"}).
		AddRow(models.CardStatusPublished, 3, 42).
		AddRow(models.CardStatusDraft, 2, 0)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, COUNT(*) as count, COALESCE(SUM(view_count), 0) as views FROM "cards"`)).
		WithArgs(10).
		WillReturnRows(rows)

	stats, err := repo.StatsByOwner(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalCards)
	assert.Equal(t, int64(3), stats.Published)
	assert.Equal(t, int64(2), stats.Drafts)
	assert.Equal(t, int64(42), stats.TotalViews)
	assert.NoError(t, mock.ExpectationsWereMet())
}
