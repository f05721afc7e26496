package database

import (
	"fmt"
	"log"

	"github.com/rgusain/tarazu-api/internal/config"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// One terminal talks to this service; a small pool is plenty
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.CartItem{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.DiscountTier{},
		&entity.StoreSettings{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the first-run defaults: one
// admin user, the two built-in discount tiers and the settings row.
// Existing rows are left alone, so this is safe to run on every boot.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var adminCount int64
	if err := db.Model(&entity.User{}).Where("role = ?", enum.RoleAdmin).Count(&adminCount).Error; err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}

	if adminCount == 0 {
		adminName := viper.GetString("ADMIN_NAME")
		if adminName == "" {
			adminName = "Admin User"
		}
		adminPassword := viper.GetString("ADMIN_PASSWORD")
		if adminPassword == "" {
			adminPassword = "admin"
			log.Println("Warning: ADMIN_PASSWORD not set, seeding default admin with password 'admin'")
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := entity.User{
			Name:         adminName,
			Role:         enum.RoleAdmin,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create default admin: %w", err)
		}
		log.Printf("Default admin user created: %s", adminName)
	}

	var tierCount int64
	if err := db.Model(&entity.DiscountTier{}).Count(&tierCount).Error; err != nil {
		return fmt.Errorf("failed to count discount tiers: %w", err)
	}

	if tierCount == 0 {
		// 5% over 200 and 10% over 400 currency units
		tiers := []entity.DiscountTier{
			{Threshold: 20000, Percentage: 5, Position: 0},
			{Threshold: 40000, Percentage: 10, Position: 1},
		}
		if err := db.Create(&tiers).Error; err != nil {
			return fmt.Errorf("failed to create default discount tiers: %w", err)
		}
	}

	var settingsCount int64
	if err := db.Model(&entity.StoreSettings{}).Count(&settingsCount).Error; err != nil {
		return fmt.Errorf("failed to count settings rows: %w", err)
	}

	if settingsCount == 0 {
		settings := entity.StoreSettings{
			SiteName: "gusain billing app",
			Currency: "INR",
			Language: "en",
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to create default settings: %w", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
