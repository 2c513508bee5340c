package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"habit-tracker/internal/habits"
)

type Repository struct {
	Db *Database
}

func NewRepository(db *Database) *Repository {
	return &Repository{Db: db}
}

const selectColumns = `id, date, coding_level, doomscrolled, created_at, updated_at`

// GetHabitsInRange returns entries with from <= date <= to, ascending by date.
func (r *Repository) GetHabitsInRange(ctx context.Context, from, to string) ([]habits.Entry, error) {
	rows, err := r.Db.db.QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM habit_tracking
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query habits %s..%s: %w", from, to, err)
	}
	defer rows.Close()

	entries := []habits.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetHabitByDate returns ErrNotFound when no entry exists for date.
func (r *Repository) GetHabitByDate(ctx context.Context, date string) (habits.Entry, error) {
	row := r.Db.db.QueryRowContext(ctx, `
		SELECT `+selectColumns+`
		FROM habit_tracking
		WHERE date = ?
	`, date)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return habits.Entry{}, ErrNotFound
	}
	return e, err
}

// GetLatestHabit returns the most recent entry on or before date.
func (r *Repository) GetLatestHabit(ctx context.Context, date string) (habits.Entry, error) {
	row := r.Db.db.QueryRowContext(ctx, `
		SELECT `+selectColumns+`
		FROM habit_tracking
		WHERE date <= ?
		ORDER BY date DESC
		LIMIT 1
	`, date)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return habits.Entry{}, ErrNotFound
	}
	return e, err
}

// SaveHabitEntry validates and upserts an entry keyed by date, returning the
// stored row. The id and created_at of an existing row are kept.
func (r *Repository) SaveHabitEntry(ctx context.Context, entry habits.Entry) (habits.Entry, error) {
	if err := ValidateEntry(entry); err != nil {
		return habits.Entry{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.Db.db.ExecContext(ctx, `
		INSERT INTO habit_tracking (id, date, coding_level, doomscrolled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			coding_level = excluded.coding_level,
			doomscrolled = excluded.doomscrolled,
			updated_at = excluded.updated_at
	`, uuid.NewString(), entry.Date, entry.CodingLevel, entry.Doomscrolled, now, now)
	if err != nil {
		return habits.Entry{}, fmt.Errorf("upsert habit %s: %w", entry.Date, err)
	}

	return r.GetHabitByDate(ctx, entry.Date)
}

// DeleteHabitEntry removes the entry for date, if any.
func (r *Repository) DeleteHabitEntry(ctx context.Context, date string) error {
	_, err := r.Db.db.ExecContext(ctx, "DELETE FROM habit_tracking WHERE date = ?", date)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (habits.Entry, error) {
	var e habits.Entry
	var createdAt, updatedAt string

	if err := s.Scan(&e.ID, &e.Date, &e.CodingLevel, &e.Doomscrolled, &createdAt, &updatedAt); err != nil {
		return habits.Entry{}, err
	}

	var err error
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return habits.Entry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return habits.Entry{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return e, nil
}
