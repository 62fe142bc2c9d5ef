package storage

import (
	"os"
	"sync"
	"time"

	"deskstore/internal/config"
	"deskstore/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	log := logger.GetLogger()
	env := config.GetEnv()

	var dialector gorm.Dialector
	if env.IsTesting {
		dialector = sqlite.Open("file::memory:?cache=shared&_busy_timeout=5000")
	} else {
		dialector = postgres.Open(env.DatabaseDsn)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDB, err := database.DB()
	if err != nil {
		log.Error("Failed to access underlying database handle", "error", err)
		os.Exit(1)
	}

	if env.IsTesting {
		// a single connection keeps the shared in-memory database alive
		// and serializes writes, which SQLite requires anyway
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := applyMigrations(database); err != nil {
		log.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	db = database
}
