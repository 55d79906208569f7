package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"petsitter/internal/database"
	"petsitter/internal/domain"
	"petsitter/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "petsitter.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM pets")
	db.Exec("DELETE FROM sitter_services")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM addresses")
	db.Exec("DELETE FROM ads")
	db.Exec("DELETE FROM auth_tokens")
	db.Exec("DELETE FROM profiles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	listingRepo := repository.NewSitterServiceRepository(db)
	petRepo := repository.NewPetRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	adRepo := repository.NewAdRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	owners := make([]*domain.User, 0, 3)
	ownerEmails := []string{"priya@mail.com", "arjun@gmail.com", "meera@yahoo.com"}
	for i, email := range ownerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		u := &domain.User{
			Username:     fmt.Sprintf("owner%d", i+1),
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleNormalUser,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatal("create user failed:", err)
		}
		_ = userRepo.SaveProfile(ctx, &domain.Profile{
			UserID:      u.ID,
			Name:        fmt.Sprintf("Pet Owner %d", i+1),
			Email:       u.Email,
			Username:    u.Username,
			Role:        domain.RoleNormalUser,
			PhoneNumber: fmt.Sprintf("+91 98765 432%02d", i+10),
			Verified:    true,
		})
		owners = append(owners, u)
	}

	sitters := make([]*domain.User, 0, 3)
	sitterEmails := []string{"ravi@petcare.com", "anita@petcare.com", "kiran@petcare.com"}
	for i, email := range sitterEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("sitter123"), bcrypt.DefaultCost)
		u := &domain.User{
			Username:     fmt.Sprintf("sitter%d", i+1),
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RolePetsitter,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatal("create user failed:", err)
		}
		_ = userRepo.SaveProfile(ctx, &domain.Profile{
			UserID:      u.ID,
			Name:        fmt.Sprintf("Pet Sitter %d", i+1),
			Email:       u.Email,
			Username:    u.Username,
			Role:        domain.RolePetsitter,
			PhoneNumber: fmt.Sprintf("+91 91234 567%02d", i+20),
			PAN:         fmt.Sprintf("ABCDE12%02dF", i+34),
			Aadhar:      fmt.Sprintf("1234 5678 90%02d", i+12),
			Verified:    i == 0, // first sitter manually verified
		})
		sitters = append(sitters, u)
	}

	// ================== ADDRESSES ==================
	log.Println("Creating addresses...")
	addresses := make([]*domain.Address, 0, 6)
	cities := []string{"Mumbai", "Pune", "Bengaluru"}
	for i, u := range append(append([]*domain.User{}, owners...), sitters...) {
		lat := 18.5 + float64(i)*0.1
		lng := 73.8 + float64(i)*0.1
		a := &domain.Address{
			UserID:    u.ID,
			Address:   fmt.Sprintf("%d MG Road", 10+i),
			City:      cities[i%len(cities)],
			State:     "Maharashtra",
			Zipcode:   fmt.Sprintf("4110%02d", i+1),
			Country:   "India",
			Latitude:  &lat,
			Longitude: &lng,
		}
		if err := addressRepo.Create(ctx, a); err != nil {
			log.Fatal("create address failed:", err)
		}
		addresses = append(addresses, a)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	catalog := []struct {
		name string
		pet  domain.PetType
		desc string
	}{
		{"Dog Walking", domain.PetDog, "Daily walks around your neighbourhood"},
		{"Dog Boarding", domain.PetDog, "Overnight stay at the sitter's home"},
		{"Cat Sitting", domain.PetCat, "In-home visits with feeding and play"},
		{"Bird Care", domain.PetBird, "Cage cleaning and feeding"},
		{"Aquarium Upkeep", domain.PetFish, "Tank checks and feeding"},
		{"Rabbit Boarding", domain.PetRabbit, "Hutch care and daily handling"},
	}
	services := make([]*domain.Service, 0, len(catalog))
	for _, entry := range catalog {
		s := &domain.Service{
			Name:        entry.name,
			PetType:     entry.pet,
			Description: entry.desc,
		}
		if err := serviceRepo.Create(ctx, s); err != nil {
			log.Fatal("create service failed:", err)
		}
		services = append(services, s)
	}

	// ================== SITTER SERVICES ==================
	log.Println("Creating sitter services...")
	listings := make([]*domain.SitterService, 0, 6)
	for i, s := range services {
		sitter := sitters[i%len(sitters)]
		addr := addresses[len(owners)+i%len(sitters)]
		ss := &domain.SitterService{
			UserID:    sitter.ID,
			ServiceID: s.ID,
			AddressID: addr.ID,
			Rate:      15 + float64(i)*5,
		}
		if err := listingRepo.Create(ctx, ss); err != nil {
			log.Fatal("create sitter service failed:", err)
		}
		listings = append(listings, ss)
	}

	// ================== PETS ==================
	log.Println("Creating pets...")
	pets := make([]*domain.Pet, 0, 3)
	petSpecs := []struct {
		name  string
		pet   domain.PetType
		breed string
		age   int
	}{
		{"Bruno", domain.PetDog, "Labrador", 3},
		{"Whiskers", domain.PetCat, "Persian", 2},
		{"Kiwi", domain.PetBird, "Budgerigar", 1},
	}
	for i, spec := range petSpecs {
		age := spec.age
		p := &domain.Pet{
			UserID:        owners[i].ID,
			Name:          spec.name,
			Type:          spec.pet,
			Breed:         spec.breed,
			Age:           &age,
			Bio:           fmt.Sprintf("%s loves company", spec.name),
			ImportantInfo: "No special needs",
		}
		if err := petRepo.Create(ctx, p); err != nil {
			log.Fatal("create pet failed:", err)
		}
		pets = append(pets, p)
	}

	// ================== ORDERS ==================
	log.Println("Creating orders...")
	for i := 0; i < 3; i++ {
		owner := owners[i]
		listing := listings[i%len(listings)]
		qty := i + 1
		petID := pets[i].ID
		addressID := addresses[i].ID
		o := &domain.Order{
			NormalUserID:    owner.ID,
			PetsitterUserID: listing.UserID,
			ServiceModelID:  listing.ID,
			PetID:           &petID,
			UserAddressID:   &addressID,
			Quantity:        qty,
			FinalRate:       listing.Rate * float64(qty),
			StartDatetime:   time.Now().Add(time.Duration(24*(i+1)) * time.Hour).UTC(),
			Status:          domain.OrderPending,
			MsgForUser:      domain.DefaultOrderMessage,
			MsgForPetsitter: domain.DefaultOrderMessage,
		}
		if err := orderRepo.Create(ctx, o); err != nil {
			log.Fatal("create order failed:", err)
		}
	}

	// ================== ADS ==================
	log.Println("Creating ads...")
	adSpecs := []struct {
		punch  string
		url    string
		active bool
	}{
		{"20% off your first booking", "https://example.com/first-booking", true},
		{"Refer a friend, earn credits", "https://example.com/referral", true},
		{"Holiday season promo", "https://example.com/holiday", false},
	}
	for i, spec := range adSpecs {
		a := &domain.Ad{
			PunchLine: spec.punch,
			URL:       spec.url,
			ImageURL:  fmt.Sprintf("https://cdn.example.com/ads/%d.png", i+1),
			IsActive:  spec.active,
		}
		if err := adRepo.Create(ctx, a); err != nil {
			log.Fatal("create ad failed:", err)
		}
	}

	log.Println("Seed completed.")
	log.Println("Owners: priya@mail.com / owner123 (and friends)")
	log.Println("Sitters: ravi@petcare.com / sitter123 (and friends)")
}
