package habits

import "time"

const (
	// WindowDays is the length of the weekly tracker.
	WindowDays = 7
	// LookbackDays bounds every backward scan over the history.
	LookbackDays = 100
	// MaxConsecutiveMisses ends a streak on the day it is reached.
	MaxConsecutiveMisses = 3
)

// WeeklyHabit is the weekly tracker card for one dimension.
type WeeklyHabit struct {
	Dimension     Dimension  `json:"dimension"`
	HabitName     string     `json:"habit_name"`
	DayStates     []DayState `json:"day_states"`
	TotalDays     int        `json:"total_days"`
	CompletedDays int        `json:"completed_days"`
}

// dayIndex answers per-day questions about a history relative to today.
// Offsets count days back from today (0 = today).
type dayIndex struct {
	today   time.Time
	entries map[string]Entry
	dim     Dimension
}

func newDayIndex(history []Entry, dim Dimension, today time.Time) dayIndex {
	entries := make(map[string]Entry, len(history))
	for _, e := range history {
		// later duplicates win, matching upsert-by-date
		entries[e.Date] = e
	}
	return dayIndex{today: DateOf(today), entries: entries, dim: dim}
}

func (ix dayIndex) entry(offset int) (Entry, bool) {
	e, ok := ix.entries[ix.today.AddDate(0, 0, -offset).Format(DateLayout)]
	return e, ok
}

func (ix dayIndex) complete(offset int) bool {
	e, ok := ix.entry(offset)
	return ok && ix.dim.Completes(e)
}

// latestComplete returns the offset of the most recent complete day.
func (ix dayIndex) latestComplete() (int, bool) {
	for off := 0; off <= LookbackDays; off++ {
		if ix.complete(off) {
			return off, true
		}
	}
	return 0, false
}

// streakStart walks back from the complete day at offset k and returns the
// earliest complete day still connected to it by fewer than
// MaxConsecutiveMisses incomplete days.
func (ix dayIndex) streakStart(k int) int {
	start, misses := k, 0
	for off := k + 1; off <= LookbackDays; off++ {
		if ix.complete(off) {
			start, misses = off, 0
			continue
		}
		misses++
		if misses >= MaxConsecutiveMisses {
			break
		}
	}
	return start
}

func (ix dayIndex) anyCompleteFrom(offset int) bool {
	for off := offset; off <= LookbackDays; off++ {
		if ix.complete(off) {
			return true
		}
	}
	return false
}

// ClassifyWeek renders the weekly streak tracker for dim as of today.
//
// The result always holds WindowDays states. The visible streak is laid out
// from index 0: the first slot is the day the streak (or the last six days of
// it) began, followed by one slot per day up to today, and Future padding
// after that. A streak ends on its MaxConsecutiveMisses-th consecutive
// incomplete day; a streak that ended before yesterday is not shown at all.
//
// While today has no entry and yesterday was complete, today stays Future.
// The exception is a streak restarted yesterday after an earlier one broke,
// where today is already Missed. An entry for today that fails the predicate
// is Missed.
func ClassifyWeek(history []Entry, dim Dimension, today time.Time) WeeklyHabit {
	states := make([]DayState, WindowDays)
	for i := range states {
		states[i] = Future
	}
	result := WeeklyHabit{
		Dimension: dim,
		HabitName: dim.Name(),
		DayStates: states,
		TotalDays: WindowDays,
	}

	ix := newDayIndex(history, dim, today)
	k, ok := ix.latestComplete()
	if !ok || k >= WindowDays {
		return result
	}

	start := min(ix.streakStart(k), WindowDays-1)

	// a one-day streak restarted yesterday after an earlier streak broke
	restarted := start == 1 && ix.anyCompleteFrom(2)
	_, loggedToday := ix.entry(0)
	undecidedToday := k == 1 && !loggedToday && !restarted

	walked := make([]DayState, 0, WindowDays)
	misses, endedAt := 0, -1
	for off := start; off >= 0; off-- {
		if off == 0 && undecidedToday {
			break
		}
		if ix.complete(off) {
			walked = append(walked, Completed)
			misses = 0
		} else {
			walked = append(walked, Missed)
			misses++
		}
		if misses == MaxConsecutiveMisses {
			endedAt = off
			break
		}
	}

	if endedAt > 1 {
		return result
	}

	copy(states, walked)
	for _, s := range walked {
		if s == Completed {
			result.CompletedDays++
		}
	}
	return result
}
