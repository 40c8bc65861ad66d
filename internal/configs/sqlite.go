package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "github.com/code-surya/nomad/internal/models"
)

// New opens the sqlite database, or returns nil when no DSN is configured
// so the repositories surface an unavailable error instead of panicking.
func New(dsn string) *gorm.DB {
	if dsn == "" {
		return nil
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}, &model.User{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
