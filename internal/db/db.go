package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"asg-backend-V2.0/internal/config"
	"asg-backend-V2.0/pkg/logging"
)

var database *gorm.DB

// InitDBFromConfig opens the postgres connection described by the DB section
// of the loaded configuration and applies the pool settings.
func InitDBFromConfig(cfg *config.APIConfig) error {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.Username, cfg.DB.Password.Value,
		cfg.DB.Names.ASG, cfg.DB.SSLMode)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.DB.Pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
	}
	if cfg.DB.Pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
	}
	if cfg.DB.Pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Second)
	}

	database = conn
	logging.Info("Connected to database %s on %s:%d", cfg.DB.Names.ASG, cfg.DB.Host, cfg.DB.Port)
	return nil
}

// GetDB returns the database handle.
func GetDB() *gorm.DB {
	return database
}
