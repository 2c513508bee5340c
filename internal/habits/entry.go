package habits

import "time"

// DateLayout is the natural-key format of an entry date.
const DateLayout = "2006-01-02"

// Entry is one logged day. The store guarantees at most one entry per Date.
type Entry struct {
	ID           string    `json:"id,omitempty"`
	Date         string    `json:"date"`
	CodingLevel  int       `json:"coding_level"` // 0 none, 1 light, 2 heavy
	Doomscrolled bool      `json:"doomscrolled"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// Dimension selects which field of an Entry decides whether a day is complete.
type Dimension string

const (
	Coding     Dimension = "coding"
	Doomscroll Dimension = "doomscroll"
)

// Dimensions lists every tracked habit in display order.
var Dimensions = []Dimension{Coding, Doomscroll}

var dimensionNames = map[Dimension]string{
	Coding:     "Coding",
	Doomscroll: "No Doomscroll",
}

// ParseDimension accepts the wire name of a dimension.
func ParseDimension(s string) (Dimension, bool) {
	d := Dimension(s)
	_, ok := dimensionNames[d]
	return d, ok
}

// Name is the label shown on the weekly tracker.
func (d Dimension) Name() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return string(d)
}

// Completes reports whether e satisfies the dimension's predicate.
// Unknown dimensions never complete.
func (d Dimension) Completes(e Entry) bool {
	switch d {
	case Coding:
		return e.CodingLevel > 0
	case Doomscroll:
		return !e.Doomscrolled
	default:
		return false
	}
}

// DayState is the derived status of one day in the weekly window.
type DayState string

const (
	Completed DayState = "completed"
	Missed    DayState = "missed"
	Future    DayState = "future"
)

// DateOf truncates t to its calendar day in t's own location and returns
// that day at UTC midnight, so day arithmetic is free of DST jumps.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as an entry date key.
func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}
