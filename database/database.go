package database

import (
	"fmt"
	"log"

	"messfeed/config"
	"messfeed/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect establishes the PostgreSQL connection, runs migrations and seeds
// the default hall. The returned instance is handed to the store layer;
// nothing else touches the raw connection.
func Connect() *gorm.DB {
	cfg := config.AppConfig

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	// TranslateError lets the store see unique-index violations as
	// gorm.ErrDuplicatedKey instead of a driver-specific error.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)
	seedHalls(db)

	return db
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Hall{},
		&models.Review{},
		&models.Complaint{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// seedHalls inserts the default hall if the table is empty.
func seedHalls(db *gorm.DB) {
	var count int64
	db.Model(&models.Hall{}).Count(&count)
	if count > 0 {
		return
	}

	hall := models.Hall{
		HallCode: "RK",
		HallName: "Radhakrishnan Hall",
		IsActive: true,
	}
	if err := db.Create(&hall).Error; err != nil {
		log.Printf("Error seeding default hall: %v", err)
	}
}
