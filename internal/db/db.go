package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AgendlyHQ/booking-scheduler/internal/config"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.BookingPage{},
		&models.CustomFieldDefinition{},
		&models.Appointment{},
		&models.CustomFieldValue{},
		&models.CancelledAppointment{},
		&models.ScheduledMessage{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
