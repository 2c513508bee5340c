package utils

import "habit-tracker/internal/habits"

func GetDayStateEmoji(state habits.DayState) string {
	switch state {
	case habits.Completed:
		return "✅"
	case habits.Missed:
		return "⬛"
	default:
		return "·"
	}
}

func GetDimensionEmoji(dim habits.Dimension) string {
	switch dim {
	case habits.Coding:
		return "💻"
	case habits.Doomscroll:
		return "📵"
	default:
		return "📌"
	}
}

func GetCodingLevelName(level int) string {
	switch level {
	case 0:
		return "No coding"
	case 1:
		return "Light"
	case 2:
		return "Heavy"
	default:
		return "Unknown"
	}
}
