package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vignesh-ravichandran/Crimson/internal/config"
	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&dbm.Account{},
		&dbm.Journey{},
		&dbm.Dimension{},
		&dbm.JourneyMember{},
		&dbm.JourneyInvite{},
		&dbm.Checkin{},
		&dbm.CheckinDetail{},
		&dbm.Streak{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
