package heatmap

import (
	"strings"
	"testing"
	"time"

	"habit-tracker/internal/habits"
)

func TestYearCoversJanuaryFirstThroughToday(t *testing.T) {
	today := time.Date(2025, 3, 4, 18, 0, 0, 0, time.UTC)
	points := []habits.HeatmapPoint{
		{Date: "2024-12-31", Value: 2},
		{Date: "2025-01-01", Value: 1},
		{Date: "2025-02-14", Value: 2},
		{Date: "2025-03-05", Value: 2},
	}

	months := Year(points, today)
	if len(months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(months))
	}
	if got := len(months[0].Cells); got != 31 {
		t.Errorf("January cells = %d, want 31", got)
	}
	if got := len(months[1].Cells); got != 28 {
		t.Errorf("February cells = %d, want 28", got)
	}
	if got := len(months[2].Cells); got != 4 {
		t.Errorf("March cells = %d, want 4", got)
	}

	jan1 := months[0].Cells[0]
	if !jan1.HasData || jan1.Value != 1 {
		t.Errorf("Jan 1 = %+v, want value 1 with data", jan1)
	}
	feb14 := months[1].Cells[13]
	if feb14.Date != "2025-02-14" || feb14.Value != 2 {
		t.Errorf("Feb 14 = %+v", feb14)
	}
	if months[0].Cells[1].HasData {
		t.Error("Jan 2 should have no data")
	}
}

func TestScaleForDoomscrollIsInverted(t *testing.T) {
	s := ScaleFor(habits.Doomscroll)
	if s.Color(0) != colorGood {
		t.Errorf("avoided day color = %s, want %s", s.Color(0), colorGood)
	}
	if s.Color(1) != colorEmpty {
		t.Errorf("doomscrolled day color = %s, want %s", s.Color(1), colorEmpty)
	}

	c := ScaleFor(habits.Coding)
	if c.Color(2) != colorStrong || c.Color(0) != colorEmpty {
		t.Errorf("unexpected coding palette: %v", c.Colors)
	}
	if c.Color(9) != colorEmpty {
		t.Errorf("out of domain value should fall back to first color")
	}
}

func TestRenderText(t *testing.T) {
	today := time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)
	points := []habits.HeatmapPoint{
		{Date: "2025-01-01", Value: 2},
		{Date: "2025-01-03", Value: 0},
	}

	got := RenderText(points, habits.Coding, today)
	want := "Coding 2025\nJan 🟨" + emojiNoData + "⬜\n"
	if got != want {
		t.Errorf("RenderText() = %q, want %q", got, want)
	}

	doom := RenderText([]habits.HeatmapPoint{{Date: "2025-01-01", Value: 0}}, habits.Doomscroll, today)
	if !strings.HasPrefix(doom, "No Doomscroll 2025\nJan 🟩") {
		t.Errorf("unexpected doomscroll render: %q", doom)
	}
}
