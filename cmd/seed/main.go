package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jasrah85/vibrant-art-group/internal/database"
	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	"github.com/Jasrah85/vibrant-art-group/internal/repository"
)

// Seeds a fresh development database: one artist, a couple of gallery
// pieces (one with wizard prefill overrides) and an admin account.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "vibrant.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM commission_events")
	db.Exec("DELETE FROM commission_requests")
	db.Exec("DELETE FROM gallery_items")
	db.Exec("DELETE FROM artists")
	db.Exec("DELETE FROM admin_users")

	ctx := context.Background()
	now := time.Now()

	artists := repository.NewArtistRepository(db)
	gallery := repository.NewGalleryRepository(db)
	users := repository.NewAdminUserRepository(db)

	log.Println("Creating artist...")
	bio := "Acrylic and watercolor painter. Most at home with animals, gardens and warm light."
	artist := &domain.Artist{
		ID:                    uuid.NewString(),
		Slug:                  "aunt-artist",
		DisplayName:           "June Carver",
		BioShort:              "Paintings with warmth.",
		BioLong:               &bio,
		IsActive:              true,
		AvailabilityStatus:    domain.AvailabilityOpen,
		AcceptsRush:           true,
		CommunitySlotsEnabled: true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := artists.Create(ctx, artist); err != nil {
		log.Fatal("seed artist:", err)
	}

	log.Println("Creating gallery items...")
	year := 2025
	dims := `16" x 20"`
	price := int64(42000)
	prefill := `{"preferredMedium":"acrylic","detailLevel":"HIGH","notes":"Similar style to Sunset Over the Lake; happy to adapt colors."}`

	items := []*domain.GalleryItem{
		{
			ID:              uuid.NewString(),
			Slug:            "sunset-over-the-lake",
			ArtistID:        artist.ID,
			Title:           "Sunset Over the Lake",
			Year:            &year,
			Medium:          "acrylic",
			SizeTier:        "M",
			Dimensions:      &dims,
			DetailLevel:     "DETAILED",
			BackgroundLevel: "FULL",
			Status:          domain.GalleryAvailable,
			PriceCents:      &price,
			ImageKey:        "gallery/sunset-over-the-lake.jpg",
			PrefillJSON:     &prefill,
			CreatedAt:       now,
		},
		{
			ID:              uuid.NewString(),
			Slug:            "terrier-portrait",
			ArtistID:        artist.ID,
			Title:           "Terrier Portrait",
			Medium:          "watercolor",
			SizeTier:        "S",
			DetailLevel:     "HIGH",
			BackgroundLevel: "SIMPLE",
			Status:          domain.GalleryCommissionExample,
			ImageKey:        "gallery/terrier-portrait.jpg",
			CreatedAt:       now,
		},
	}
	for _, item := range items {
		if err := gallery.Create(ctx, item); err != nil {
			log.Fatal("seed gallery item:", err)
		}
	}

	log.Println("Creating admin user...")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash password:", err)
	}
	adminUser := &domain.AdminUser{
		Email:        "studio@vibrantart.example",
		PasswordHash: string(hash),
		Name:         "Studio Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, adminUser); err != nil {
		log.Fatal("seed admin user:", err)
	}
	log.Printf("Admin created: %s / %s (add it to ADMIN_EMAILS)", adminUser.Email, password)

	log.Println("Seed complete.")
}
