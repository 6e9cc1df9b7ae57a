// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"stockroom/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls the amount of generated catalog data.
type Options struct {
	Stores   int
	ItemsPer int
	TagsPer  int
	LinksPer int
	DemoUser string
	DemoPass string
}

// DefaultOptions returns a small but browsable catalog.
func DefaultOptions() Options {
	return Options{
		Stores:   5,
		ItemsPer: 12,
		TagsPer:  6,
		LinksPer: 3,
		DemoUser: "demo",
		DemoPass: "demo-password",
	}
}

// Seeder populates the database with fake stores, items, tags and links.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll truncates all seeded tables. Postgres only; dev use.
func (s *Seeder) ClearAll() error {
	return s.db.Exec("TRUNCATE TABLE item_tag, items, tags, stores, users RESTART IDENTITY CASCADE").Error
}

// Run creates the demo user and the catalog.
func (s *Seeder) Run() error {
	if err := s.seedDemoUser(); err != nil {
		return err
	}

	for i := 0; i < s.opts.Stores; i++ {
		store := &models.Store{
			// Numeric suffix keeps names unique when gofakeit repeats itself.
			Name: fmt.Sprintf("%s #%d", gofakeit.Company(), i+1),
		}
		if err := s.db.Create(store).Error; err != nil {
			return fmt.Errorf("create store: %w", err)
		}

		tags := make([]*models.Tag, 0, s.opts.TagsPer)
		for j := 0; j < s.opts.TagsPer; j++ {
			tag := &models.Tag{
				Name:    gofakeit.ProductCategory(),
				StoreID: store.ID,
			}
			if err := s.db.Create(tag).Error; err != nil {
				return fmt.Errorf("create tag: %w", err)
			}
			tags = append(tags, tag)
		}

		for j := 0; j < s.opts.ItemsPer; j++ {
			item := &models.Item{
				Name:    fmt.Sprintf("%s %d-%d", gofakeit.ProductName(), i+1, j+1),
				Price:   gofakeit.Price(1, 500),
				StoreID: store.ID,
			}
			if err := s.db.Create(item).Error; err != nil {
				return fmt.Errorf("create item: %w", err)
			}

			for _, tag := range s.pickTags(tags) {
				link := &models.ItemTag{ItemID: item.ID, TagID: tag.ID}
				if err := s.db.Create(link).Error; err != nil {
					return fmt.Errorf("link tag: %w", err)
				}
			}
		}

		log.Printf("Seeded store %q with %d items and %d tags", store.Name, s.opts.ItemsPer, s.opts.TagsPer)
	}

	return nil
}

func (s *Seeder) seedDemoUser() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(s.opts.DemoPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{Username: s.opts.DemoUser, Password: string(hashed)}
	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}
	log.Printf("Seeded demo user %q", s.opts.DemoUser)
	return nil
}

// pickTags selects up to LinksPer distinct tags for one item.
func (s *Seeder) pickTags(tags []*models.Tag) []*models.Tag {
	if len(tags) == 0 || s.opts.LinksPer <= 0 {
		return nil
	}
	n := s.rng.Intn(s.opts.LinksPer + 1)
	if n > len(tags) {
		n = len(tags)
	}
	picked := make([]*models.Tag, 0, n)
	for _, idx := range s.rng.Perm(len(tags))[:n] {
		picked = append(picked, tags[idx])
	}
	return picked
}
