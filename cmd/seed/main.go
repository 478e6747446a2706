// Command main runs the database seeder for GitMentor.
package main

import (
	"flag"
	"log"

	"gitmentor/internal/config"
	"gitmentor/internal/database"
	"gitmentor/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	mentorRatio := flag.Float64("mentor-ratio", 0.4, "Fraction of users that get mentor profiles")
	numSessions := flag.Int("sessions", 0, "Number of sessions to create (0 = 3x users)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(seed.Options{
		NumUsers:    *numUsers,
		MentorRatio: *mentorRatio,
		NumSessions: *numSessions,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
}
