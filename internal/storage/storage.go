package storage

import (
	"os"
	"sync"

	"safetybot-backend/internal/config"
	"safetybot-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the shared database handle, connecting on first use.
func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	gormConfig := &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	}

	conn, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), gormConfig)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db = conn
}

// AutoMigrate applies schema migrations for the given models. Called once
// from main before routes are registered.
func AutoMigrate(models ...any) {
	if err := GetDb().AutoMigrate(models...); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}
