package seed

import (
	"fmt"
	"log"

	"cardify/internal/models"

	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers int
	NumCards int
	// SkipBcrypt stores plaintext passwords. Dev fast mode only.
	SkipBcrypt bool
	DryRun     bool
	// MaxDays bounds the created_at spread of generated cards.
	MaxDays int
}

// Seeder populates the database with demo users and cards.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db, opts),
		opts:    opts,
	}
}

// ClearAll removes all seeded rows. Cards go first to satisfy the
// foreign key on user_id.
func (s *Seeder) ClearAll() error {
	log.Println("Cleaning database...")
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.Card{}).Error; err != nil {
		return fmt.Errorf("delete cards: %w", err)
	}
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}

// Run creates NumUsers demo users and spreads NumCards cards across them.
func (s *Seeder) Run() ([]*models.User, error) {
	numUsers := s.opts.NumUsers
	if numUsers <= 0 {
		numUsers = 10
	}
	numCards := s.opts.NumCards
	if numCards <= 0 {
		numCards = 50
	}

	log.Printf("Seeding %d users...", numUsers)
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}

	log.Printf("Seeding %d cards...", numCards)
	cards := make([]*models.Card, 0, numCards)
	for i := 0; i < numCards; i++ {
		owner := users[i%len(users)]
		cards = append(cards, s.factory.BuildCard(owner))
	}
	if err := s.factory.CreateCardsBatch(cards); err != nil {
		return nil, fmt.Errorf("create cards: %w", err)
	}

	return users, nil
}
