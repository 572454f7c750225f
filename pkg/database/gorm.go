package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type GormConfig struct {
	Driver string
	DSN    string
	// LogLevel defaults to logger.Warn when zero.
	LogLevel logger.LogLevel
}

func getLogger(level logger.LogLevel) logger.Interface {
	if level == 0 {
		level = logger.Warn
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true, // Don't include params in the SQL log
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB, maxOpen int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

// NewGormDB opens the configured driver. SQLite is limited to a single writer connection.
func NewGormDB(cfg GormConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: getLogger(cfg.LogLevel),
	}

	var (
		dialector gorm.Dialector
		maxOpen   int
	)
	switch cfg.Driver {
	case DriverPostgres, "":
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres connection string is empty")
		}
		dialector = postgres.Open(cfg.DSN)
		maxOpen = 100
	case DriverSQLite:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("sqlite path is empty")
		}
		dialector = sqlite.Open(cfg.DSN)
		maxOpen = 1
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, maxOpen); err != nil {
		return nil, err
	}

	return db, nil
}

// NewSQLiteDB opens a SQLite database file (or a "file:...?mode=memory" URI).
func NewSQLiteDB(path string, level logger.LogLevel) (*gorm.DB, error) {
	return NewGormDB(GormConfig{Driver: DriverSQLite, DSN: path, LogLevel: level})
}
