package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"habit-tracker/internal/logger"
)

type Database struct {
	db *sql.DB
}

func New(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	d := &Database{db: db}
	if err := d.init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	logger.Log.Info("✅ database initialized", zap.String("path", path))
	return d, nil
}

func (d *Database) init(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS habit_tracking (
			id TEXT PRIMARY KEY,
			date TEXT UNIQUE NOT NULL,
			coding_level INTEGER NOT NULL CHECK(coding_level >= 0 AND coding_level <= 2),
			doomscrolled BOOLEAN NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_habit_tracking_date ON habit_tracking(date)`,
	}

	for _, query := range queries {
		if _, err := d.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return nil
}

func (d *Database) Close() error {
	return d.db.Close()
}
