package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"habit-tracker/internal/habits"
)

func setupTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "habits.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewRepository(db)
}

func TestSaveHabitEntryUpsertsByDate(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	first, err := repo.SaveHabitEntry(ctx, habits.Entry{Date: "2025-01-06", CodingLevel: 1})
	if err != nil {
		t.Fatalf("failed to save entry: %v", err)
	}
	if first.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	second, err := repo.SaveHabitEntry(ctx, habits.Entry{Date: "2025-01-06", CodingLevel: 2, Doomscrolled: true})
	if err != nil {
		t.Fatalf("failed to update entry: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert changed id: %q -> %q", first.ID, second.ID)
	}
	if second.CodingLevel != 2 || !second.Doomscrolled {
		t.Errorf("upsert did not apply: %+v", second)
	}

	all, err := repo.GetHabitsInRange(ctx, "2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 entry after upsert, got %d", len(all))
	}
}

func TestSaveHabitEntryValidation(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		entry habits.Entry
		want  error
	}{
		{"level too high", habits.Entry{Date: "2025-01-06", CodingLevel: 3}, ErrInvalidCodingLevel},
		{"negative level", habits.Entry{Date: "2025-01-06", CodingLevel: -1}, ErrInvalidCodingLevel},
		{"bad format", habits.Entry{Date: "06/01/2025", CodingLevel: 1}, ErrInvalidDate},
		{"impossible date", habits.Entry{Date: "2025-02-30", CodingLevel: 1}, ErrInvalidDate},
		{"empty date", habits.Entry{CodingLevel: 1}, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.SaveHabitEntry(ctx, tt.entry)
			if !errors.Is(err, tt.want) {
				t.Errorf("SaveHabitEntry() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGetHabitsInRangeOrderedAndInclusive(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	for _, date := range []string{"2025-01-05", "2024-12-31", "2025-01-07", "2025-01-01", "2025-01-08"} {
		if _, err := repo.SaveHabitEntry(ctx, habits.Entry{Date: date, CodingLevel: 1}); err != nil {
			t.Fatalf("failed to save %s: %v", date, err)
		}
	}

	got, err := repo.GetHabitsInRange(ctx, "2025-01-01", "2025-01-07")
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}

	want := []string{"2025-01-01", "2025-01-05", "2025-01-07"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, e := range got {
		if e.Date != want[i] {
			t.Errorf("entry %d date = %s, want %s", i, e.Date, want[i])
		}
	}
}

func TestGetHabitsInRangeEmpty(t *testing.T) {
	repo := setupTestRepository(t)

	got, err := repo.GetHabitsInRange(context.Background(), "2025-01-01", "2025-12-31")
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestGetLatestHabitAndDelete(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	if _, err := repo.GetLatestHabit(ctx, "2025-01-07"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	for _, date := range []string{"2025-01-03", "2025-01-06", "2025-01-09"} {
		if _, err := repo.SaveHabitEntry(ctx, habits.Entry{Date: date, CodingLevel: 2}); err != nil {
			t.Fatalf("failed to save %s: %v", date, err)
		}
	}

	latest, err := repo.GetLatestHabit(ctx, "2025-01-07")
	if err != nil {
		t.Fatalf("failed to get latest: %v", err)
	}
	if latest.Date != "2025-01-06" {
		t.Errorf("latest date = %s, want 2025-01-06", latest.Date)
	}

	if err := repo.DeleteHabitEntry(ctx, "2025-01-06"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if _, err := repo.GetHabitByDate(ctx, "2025-01-06"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
