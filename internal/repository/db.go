package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go_verb_master/internal/model"
)

// NewDB opens the progress database and migrates the key/value table.
// Postgres URLs and DSNs use the postgres driver; anything else is treated
// as a SQLite file path (":memory:" included).
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	if appLogger == nil {
		appLogger = slog.Default()
	}

	gormLogLevel := gormlogger.Warn
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	}
	gormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	).LogMode(gormLogLevel)

	dialector, driver := openDialector(databaseURL)
	logger := appLogger.With(slog.String("driver", driver))

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		logger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, fmt.Errorf("repository.NewDB: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, fmt.Errorf("repository.NewDB: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, fmt.Errorf("repository.NewDB: ping: %w", err)
	}

	if driver == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite allows one writer; a single connection also keeps :memory: databases alive.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		logger.Error("Error migrating database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	logger.Info("Database connection established with GORM")
	return db, nil
}

// Migrate creates or updates the tables used by the repositories.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}

func openDialector(databaseURL string) (gorm.Dialector, string) {
	lower := strings.ToLower(databaseURL)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") || strings.Contains(lower, "host=") {
		return postgres.Open(databaseURL), "postgres"
	}
	if databaseURL == "" {
		databaseURL = "verb_master.db"
	}
	return sqlite.Open(databaseURL), "sqlite"
}
