package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"habit-tracker/internal/database"
	"habit-tracker/internal/habits"
	"habit-tracker/internal/logger"
	"habit-tracker/internal/utils"
)

// ErrFutureDate rejects check-ins for days that have not started yet.
var ErrFutureDate = errors.New("date is in the future")

// CheckIn is the once-a-day form: how much the user coded and whether they
// doomscrolled. An empty Date means today.
type CheckIn struct {
	CodingLevel  int    `json:"coding_level"`
	Doomscrolled bool   `json:"doomscrolled"`
	Date         string `json:"date"`
}

type HabitService struct {
	repository *database.Repository
	clock      utils.Clock
	location   *time.Location
}

func NewHabitService(repo *database.Repository, clock utils.Clock, loc *time.Location) *HabitService {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &HabitService{
		repository: repo,
		clock:      clock,
		location:   loc,
	}
}

// Today is the current calendar day in the configured timezone.
func (hs *HabitService) Today() time.Time {
	return utils.Today(hs.clock(), hs.location)
}

// Save validates and upserts a check-in.
func (hs *HabitService) Save(ctx context.Context, in CheckIn) (habits.Entry, error) {
	today := hs.Today()
	if in.Date == "" {
		in.Date = today.Format(habits.DateLayout)
	}
	if day, err := utils.ParseDate(in.Date); err == nil && day.After(today) {
		return habits.Entry{}, fmt.Errorf("%w: %s", ErrFutureDate, in.Date)
	}

	entry, err := hs.repository.SaveHabitEntry(ctx, habits.Entry{
		Date:         in.Date,
		CodingLevel:  in.CodingLevel,
		Doomscrolled: in.Doomscrolled,
	})
	if err != nil {
		logger.Log.Warn("⚠️ failed to save habit entry", zap.String("date", in.Date), zap.Error(err))
		return habits.Entry{}, err
	}

	logger.Log.Info("✅ habit entry saved",
		zap.String("date", entry.Date),
		zap.Int("coding_level", entry.CodingLevel),
		zap.Bool("doomscrolled", entry.Doomscrolled),
	)
	return entry, nil
}

// Delete removes the entry for date.
func (hs *HabitService) Delete(ctx context.Context, date string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %q", database.ErrInvalidDate, date)
	}
	return hs.repository.DeleteHabitEntry(ctx, date)
}

// HasEntryToday reports whether the latest stored check-in is today's.
func (hs *HabitService) HasEntryToday(ctx context.Context) (bool, error) {
	today := hs.Today().Format(habits.DateLayout)
	latest, err := hs.repository.GetLatestHabit(ctx, today)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return latest.Date == today, nil
}

// GetTodayHabit returns today's entry or database.ErrNotFound.
func (hs *HabitService) GetTodayHabit(ctx context.Context) (habits.Entry, error) {
	return hs.repository.GetHabitByDate(ctx, hs.Today().Format(habits.DateLayout))
}

// GetWeekHabits returns the last seven days plus today.
func (hs *HabitService) GetWeekHabits(ctx context.Context) ([]habits.Entry, error) {
	today := hs.Today()
	return hs.repository.GetHabitsInRange(ctx, utils.DaysAgo(today, habits.WindowDays), utils.DaysAgo(today, 0))
}

// GetYearHabits returns everything since January 1st.
func (hs *HabitService) GetYearHabits(ctx context.Context) ([]habits.Entry, error) {
	today := hs.Today()
	return hs.repository.GetHabitsInRange(ctx, utils.StartOfYear(today), utils.DaysAgo(today, 0))
}

// GetStreakHabits returns enough history for the weekly tracker to find where
// a running streak began.
func (hs *HabitService) GetStreakHabits(ctx context.Context) ([]habits.Entry, error) {
	today := hs.Today()
	return hs.repository.GetHabitsInRange(ctx, utils.DaysAgo(today, habits.LookbackDays), utils.DaysAgo(today, 0))
}
