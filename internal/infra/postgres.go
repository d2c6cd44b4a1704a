package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tescursos/internal/models/db_models"
)

// InitPostgresql opens the connection pool. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func InitPostgresql(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.Purchase{},
		&db_models.Progress{},
		&db_models.Certificate{},
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
