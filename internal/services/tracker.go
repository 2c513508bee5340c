package services

import (
	"context"
	"fmt"

	"habit-tracker/internal/habits"
	"habit-tracker/internal/heatmap"
	"habit-tracker/internal/utils"
)

// ViewMode is the dashboard layout: the weekly streak tracker or the year
// heatmap.
type ViewMode string

const (
	Weekly ViewMode = "weekly"
	Yearly ViewMode = "yearly"
)

// Toggle flips between the two views.
func (m ViewMode) Toggle() ViewMode {
	if m == Yearly {
		return Weekly
	}
	return Yearly
}

// ParseViewMode accepts "weekly" or "yearly"; empty means weekly.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", Weekly:
		return Weekly, nil
	case Yearly:
		return Yearly, nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// HeatmapView is everything a calendar renderer needs for one dimension.
type HeatmapView struct {
	Dimension habits.Dimension      `json:"dimension"`
	Title     string                `json:"title"`
	Start     string                `json:"start"`
	End       string                `json:"end"`
	Points    []habits.HeatmapPoint `json:"points"`
	Scale     heatmap.Scale         `json:"scale"`
}

type TrackerService struct {
	habitService *HabitService
}

func NewTrackerService(hs *HabitService) *TrackerService {
	return &TrackerService{habitService: hs}
}

// Weekly returns one tracker card per dimension.
func (ts *TrackerService) Weekly(ctx context.Context) ([]habits.WeeklyHabit, error) {
	history, err := ts.habitService.GetStreakHabits(ctx)
	if err != nil {
		return nil, err
	}

	today := ts.habitService.Today()
	cards := make([]habits.WeeklyHabit, 0, len(habits.Dimensions))
	for _, dim := range habits.Dimensions {
		cards = append(cards, habits.ClassifyWeek(history, dim, today))
	}
	return cards, nil
}

// Yearly returns one heatmap per dimension, sharing a single fetch.
func (ts *TrackerService) Yearly(ctx context.Context) ([]HeatmapView, error) {
	history, err := ts.habitService.GetYearHabits(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]HeatmapView, 0, len(habits.Dimensions))
	for _, dim := range habits.Dimensions {
		views = append(views, ts.heatmapView(history, dim))
	}
	return views, nil
}

// Heatmap returns the year heatmap for a single dimension.
func (ts *TrackerService) Heatmap(ctx context.Context, dim habits.Dimension) (HeatmapView, error) {
	history, err := ts.habitService.GetYearHabits(ctx)
	if err != nil {
		return HeatmapView{}, err
	}
	return ts.heatmapView(history, dim), nil
}

// RenderYear draws the heatmap of dim as chat text.
func (ts *TrackerService) RenderYear(ctx context.Context, dim habits.Dimension) (string, error) {
	view, err := ts.Heatmap(ctx, dim)
	if err != nil {
		return "", err
	}
	return heatmap.RenderText(view.Points, dim, ts.habitService.Today()), nil
}

func (ts *TrackerService) heatmapView(history []habits.Entry, dim habits.Dimension) HeatmapView {
	today := ts.habitService.Today()
	return HeatmapView{
		Dimension: dim,
		Title:     dim.Name(),
		Start:     utils.StartOfYear(today),
		End:       today.Format(habits.DateLayout),
		Points:    habits.Project(history, dim),
		Scale:     heatmap.ScaleFor(dim),
	}
}
