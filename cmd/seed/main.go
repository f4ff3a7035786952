// Command main runs the database seeder for ClipTube.
package main

import (
	"flag"
	"log"

	"cliptube/internal/config"
	"cliptube/internal/database"
	"cliptube/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numVideos := flag.Int("videos", 100, "Number of videos to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d videos, clean=%v\n", *numUsers, *numVideos, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Seed(*numUsers, *numVideos); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
