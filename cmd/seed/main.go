// Command main runs the database seeder for Stockroom.
package main

import (
	"flag"
	"log"

	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Stores, "stores", opts.Stores, "Number of stores to create")
	flag.IntVar(&opts.ItemsPer, "items", opts.ItemsPer, "Number of items per store")
	flag.IntVar(&opts.TagsPer, "tags", opts.TagsPer, "Number of tags per store")
	flag.IntVar(&opts.LinksPer, "links", opts.LinksPer, "Max tags linked per item")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d stores, %d items each, %d tags each, clean=%v\n",
		opts.Stores, opts.ItemsPer, opts.TagsPer, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, opts)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
