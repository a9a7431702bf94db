// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"cardify/internal/models"
	"cardify/internal/templates"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:   gofakeit.Name(),
		Email:  gofakeit.Email(),
		Avatar: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Name, user.Email)
		return user, nil
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildCard constructs a card struct but does not persist it.
func (f *Factory) BuildCard(user *models.User, overrides ...func(*models.Card)) *models.Card {
	tmpl := templates.Catalog[f.rng.Intn(len(templates.Catalog))]

	card := &models.Card{
		UserID:        user.ID,
		Title:         gofakeit.Sentence(3),
		Message:       gofakeit.Paragraph(1, 2, 8, " "),
		RecipientName: gofakeit.FirstName(),
		SenderName:    user.Name,
		Category:      tmpl.Category,
		TemplateID:    tmpl.ID,
		FontFamily:    templates.DefaultFontFamily,
		AccentColor:   tmpl.PreviewColor,
		EnvelopeStyle: templates.DefaultEnvelopeStyle,
		EnvelopeColor: templates.DefaultEnvelopeColor,
		Status:        models.CardStatusPublished,
		ShareLink:     gofakeit.LetterN(10),
		ViewCount:     uint(f.rng.Intn(200)),
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	card.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	if f.rng.Intn(5) == 0 {
		card.Status = models.CardStatusDraft
		card.ViewCount = 0
	}

	for _, override := range overrides {
		override(card)
	}
	return card
}

// CreateCardsBatch persists multiple cards in a single DB call when possible.
func (f *Factory) CreateCardsBatch(cards []*models.Card) error {
	if f.opts.DryRun {
		for _, card := range cards {
			f.nextID++
			card.ID = f.nextID
		}
		log.Printf("[dry-run] CreateCardsBatch: %d cards (no DB write)", len(cards))
		return nil
	}
	return f.db.Create(&cards).Error
}
