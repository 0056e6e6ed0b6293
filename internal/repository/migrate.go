package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table this package owns.
// Called from cmd/api and cmd/seed before serving traffic.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&serviceModel{},
		&bookingModel{},
		&bookingCounterModel{},
	)
}
