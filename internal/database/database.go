package database

import (
	"log"
	"os"
	"time"

	"ledgerman/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the durable production database and runs migrations.
func Connect(dsn string) *gorm.DB {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	migrate(db)
	return db
}

// ConnectMemory opens an ephemeral in-memory database. It backs tests and
// local runs without a Postgres instance; every call starts from an empty
// schema.
func ConnectMemory() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to open in-memory database: %v", err)
	}

	// An in-memory sqlite database lives and dies with its connection, so the
	// pool must stay on a single one.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	migrate(db)
	return db
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Player{},
		&models.Game{},
		&models.GameEvent{},
		&models.AchievementType{},
		&models.Achievement{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}
