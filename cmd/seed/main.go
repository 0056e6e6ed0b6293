package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"bookease/internal/config"
	"bookease/internal/database"
	"bookease/internal/domain"
	"bookease/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM booking_counters")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	services := repository.NewServiceRepository(db)

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		FullName:     "BookEase Admin",
		Email:        "admin@bookease.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatal("seed admin failed:", err)
	}
	log.Println("Admin created: admin@bookease.io / admin123")

	demoHash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	demo := domain.User{
		FullName:     "Demo User",
		Email:        "demo@bookease.io",
		PasswordHash: string(demoHash),
		Role:         domain.RoleUser,
	}
	if err := users.Create(ctx, &demo); err != nil {
		log.Fatal("seed demo user failed:", err)
	}
	log.Println("User created: demo@bookease.io / demo123")

	log.Println("Creating services...")
	catalog := []domain.Service{
		{
			Title:       "Seaside Resort Deluxe",
			Category:    domain.CategoryResort,
			Location:    "Phuket",
			PricePerDay: 250,
			Image:       "https://images.bookease.io/resort-deluxe.jpg",
			Available:   true,
			Badge:       "Popular",
		},
		{
			Title:       "Mountain View Lodge",
			Category:    domain.CategoryResort,
			Location:    "Queenstown",
			PricePerDay: 180,
			Image:       "https://images.bookease.io/mountain-lodge.jpg",
			Available:   true,
		},
		{
			Title:       "Executive Sedan",
			Category:    domain.CategoryVehicle,
			Location:    "Downtown",
			PricePerDay: 90,
			Image:       "https://images.bookease.io/executive-sedan.jpg",
			Available:   true,
			Badge:       "New",
		},
		{
			Title:       "Cargo Van",
			Category:    domain.CategoryVehicle,
			Location:    "Airport",
			PricePerDay: 120,
			Image:       "https://images.bookease.io/cargo-van.jpg",
			Available:   false,
		},
		{
			Title:       "Grand Conference Hall",
			Category:    domain.CategoryConferenceHall,
			Location:    "City Center",
			PricePerDay: 600,
			Image:       "https://images.bookease.io/grand-hall.jpg",
			Available:   true,
		},
	}
	for i := range catalog {
		if err := services.Create(ctx, &catalog[i]); err != nil {
			log.Fatal("seed service failed:", err)
		}
	}

	log.Printf("Seed completed: users=2 services=%d", len(catalog))
}
