package database

import (
	"log"

	"github.com/TAMUSHPE/MobileApp-sub002/config"
	"github.com/TAMUSHPE/MobileApp-sub002/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	// Create ENUM types before AutoMigrate so the typed columns can be created
	createEnumTypes(DB)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Award{},
		&models.AttendanceLog{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

func createEnumTypes(db *gorm.DB) {
	// Create user_status ENUM type
	if err := db.Exec(`DO $$ BEGIN
		CREATE TYPE user_status AS ENUM ('active', 'inactive', 'banned');
	EXCEPTION
		WHEN duplicate_object THEN null;
	END $$;`).Error; err != nil {
		log.Fatalf("Failed to create user_status enum: %v", err)
	}

	// Create user_role ENUM type
	if err := db.Exec(`DO $$ BEGIN
		CREATE TYPE user_role AS ENUM ('admin', 'staff', 'student');
	EXCEPTION
		WHEN duplicate_object THEN null;
	END $$;`).Error; err != nil {
		log.Fatalf("Failed to create user_role enum: %v", err)
	}
}
