package repository

import (
	"petsitter/internal/domain"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the repositories depend on.
// Called from cmd/api and cmd/seed.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&profileModel{},
		&authTokenModel{},
		&addressModel{},
		&serviceModel{},
		&sitterServiceModel{},
		&petModel{},
		&orderModel{},
		&domain.Ad{},
	)
}
