package db

import (
	"log"
	"os"

	"startupfuel.com/types"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the database selected by DB_TYPE (POSTGRES_DSN for postgres,
// anything else falls back to a local sqlite file) and migrates the schema.
func Init() {
	var (
		database *gorm.DB
		err      error
	)

	if os.Getenv("DB_TYPE") == "POSTGRES_DSN" {
		database, err = gorm.Open(postgres.Open(os.Getenv("POSTGRES_DSN")), &gorm.Config{})
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "database.sqlite"
		}
		database, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	DB = database
	migrate()
}

// InitInMemory swaps the global handle for a fresh in-memory sqlite database.
// Used by tests.
func InitInMemory() {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open in-memory database: %v", err)
	}
	DB = database
	migrate()
}

func migrate() {
	err := DB.AutoMigrate(
		&types.User{},
		&types.Portfolio{},
		&types.Holding{},
		&types.Transaction{},
		&types.Report{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}
