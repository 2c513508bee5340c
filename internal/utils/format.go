package utils

import (
	"fmt"
	"strings"

	"habit-tracker/internal/habits"
)

// FormatWeeklyCard renders a weekly tracker as two chat lines:
//
//	💻 <b>Coding</b> 3/7d
//	✅✅⬛✅···
func FormatWeeklyCard(w habits.WeeklyHabit) string {
	var row strings.Builder
	for _, s := range w.DayStates {
		row.WriteString(GetDayStateEmoji(s))
	}
	return fmt.Sprintf("%s <b>%s</b> %d/%dd\n%s",
		GetDimensionEmoji(w.Dimension), w.HabitName, w.CompletedDays, w.TotalDays, row.String())
}

// FormatEntry describes a saved entry in one line.
func FormatEntry(e habits.Entry) string {
	doom := "no doomscrolling 📵"
	if e.Doomscrolled {
		doom = "doomscrolled 📱"
	}
	return fmt.Sprintf("📅 %s: 💻 %s, %s", e.Date, GetCodingLevelName(e.CodingLevel), doom)
}

// FormatDayStateLegend explains the weekly card symbols.
func FormatDayStateLegend() string {
	return fmt.Sprintf("%s completed, %s missed, %s not started yet",
		GetDayStateEmoji(habits.Completed),
		GetDayStateEmoji(habits.Missed),
		GetDayStateEmoji(habits.Future),
	)
}
