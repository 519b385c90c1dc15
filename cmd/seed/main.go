package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fixitnow/internal/config"
	"fixitnow/internal/database"
	"fixitnow/internal/domain"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM users")

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")
	categoryNames := []string{"Plumbing", "Electrical", "Cleaning", "Carpentry"}
	categories := make([]domain.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		cat := domain.Category{Name: name}
		db.Create(&cat)
		categories = append(categories, cat)
	}

	// ================== USERS ==================
	log.Println("Creating users...")

	providerHash, _ := bcrypt.GenerateFromPassword([]byte("provider123"), bcrypt.DefaultCost)
	provider := domain.User{
		Email:        "provider@fixitnow.dev",
		PasswordHash: string(providerHash),
		Role:         domain.RoleProvider,
		Name:         "Pat the Plumber",
		Phone:        "+1 555 010 1234",
	}
	db.Create(&provider)
	log.Println("Provider created: provider@fixitnow.dev / provider123")

	customers := []domain.User{}
	for i := 1; i <= 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		customer := domain.User{
			Email:        fmt.Sprintf("customer%d@fixitnow.dev", i),
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			Name:         fmt.Sprintf("Customer %d", i),
			Phone:        fmt.Sprintf("+1 555 010 20%02d", i),
		}
		db.Create(&customer)
		customers = append(customers, customer)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	services := []domain.Service{
		{Title: "Leak repair", Description: "Fix leaking pipes and taps", Price: 60, ProviderID: provider.ID, CategoryID: categories[0].ID},
		{Title: "Socket installation", Description: "Install wall sockets and switches", Price: 45, ProviderID: provider.ID, CategoryID: categories[1].ID},
		{Title: "Deep cleaning", Description: "Full apartment cleaning", Price: 120, ProviderID: provider.ID, CategoryID: categories[2].ID},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	booking := domain.Booking{
		CustomerID:  customers[0].ID,
		ServiceID:   services[0].ID,
		BookingDate: time.Now(),
		Status:      domain.BookingCompleted,
	}
	db.Create(&booking)

	review := domain.Review{
		BookingID: booking.ID,
		Rating:    5,
		Comment:   "Fast and tidy, would book again",
	}
	db.Create(&review)

	payment := domain.Payment{
		BookingID:      booking.ID,
		Amount:         60,
		Method:         domain.PaymentCard,
		TransactionRef: "seed-0001",
		PaidAt:         time.Now(),
	}
	db.Create(&payment)

	log.Println("Seed complete")
}
