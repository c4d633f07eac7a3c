package database

import (
	"fmt"
	"time"

	"lead-pipeline-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	all := []interface{}{
		&models.User{},
		&models.PipelineStage{},
		&models.Lead{},
		&models.LeadEvent{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return db, nil
}

// DefaultStages is the pipeline created on an empty database.
var DefaultStages = []models.PipelineStage{
	{Name: "Prospect", Order: 1},
	{Name: "Qualified", Order: 2},
	{Name: "Proposal Sent", Order: 3},
	{Name: "Negotiation", Order: 4},
	{Name: "Closed Won", Order: 5},
}

// SeedDefaultStages inserts the default pipeline stages, skipping any that
// already exist by name so re-seeding is safe.
func SeedDefaultStages(db *gorm.DB) error {
	for _, stage := range DefaultStages {
		var count int64
		if err := db.Model(&models.PipelineStage{}).Where("name = ?", stage.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("check stage %q: %w", stage.Name, err)
		}
		if count > 0 {
			continue
		}
		s := stage
		if err := db.Create(&s).Error; err != nil {
			return fmt.Errorf("create stage %q: %w", stage.Name, err)
		}
	}
	return nil
}
