package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecovolt-backend/internal/config"
	"ecovolt-backend/internal/models"
)

// Open connects to the configured database. A postgres DSN is used when given,
// otherwise a local sqlite file keeps development setups zero-config.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(cfg.DatabaseDSN, "postgres://"),
		strings.HasPrefix(cfg.DatabaseDSN, "postgresql://"),
		strings.Contains(cfg.DatabaseDSN, "host="):
		dialector = postgres.Open(cfg.DatabaseDSN)
	case cfg.DatabaseDSN != "":
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		dialector = sqlite.Open("ecovolt.db")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Consultation{},
		&models.EnergyCalculation{},
		&models.CarbonFootprint{},
		&models.LegalDocument{},
		&models.Employee{},
		&models.CustomerTicket{},
		&models.NewsletterSubscription{},
		&models.AdminChange{},
		&models.StoredDocument{},
		&models.DocumentCounter{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}
