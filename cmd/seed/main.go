// Command main runs the database seeder for Cardify.
package main

import (
	"flag"
	"log"

	"cardify/internal/config"
	"cardify/internal/database"
	"cardify/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	numCards := flag.Int("cards", 50, "Number of cards to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	dryRun := flag.Bool("dry-run", false, "Log what would be created without writing")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d cards, clean=%v\n", *numUsers, *numCards, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB, seed.Options{
		NumUsers: *numUsers,
		NumCards: *numCards,
		DryRun:   *dryRun,
	})

	if *shouldClean && !*dryRun {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if _, err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Println("All demo users have the password: password123")
}
