package config

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rental-backend/models"
)

var DB *gorm.DB

// ConnectDatabase opens the MySQL connection, runs migrations in
// parent->child order and sets the package-level DB handle.
func ConnectDatabase(cfg *Config) error {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		return err
	}

	if cfg.SeedOnStart {
		SeedDatabase(DB)
	}
	return nil
}
