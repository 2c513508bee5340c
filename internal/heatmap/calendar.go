package heatmap

import (
	"fmt"
	"strings"
	"time"

	"habit-tracker/internal/habits"
)

// Cell is one day of the calendar. Days without an entry have HasData false.
type Cell struct {
	Date    string `json:"date"`
	Value   int    `json:"value"`
	HasData bool   `json:"has_data"`
}

// Month groups the cells of one calendar month.
type Month struct {
	Name  string `json:"name"`
	Cells []Cell `json:"cells"`
}

// Year lays points out from January 1st of today's year through today.
// Points outside that span are dropped.
func Year(points []habits.HeatmapPoint, today time.Time) []Month {
	values := make(map[string]int, len(points))
	for _, p := range points {
		values[p.Date] = p.Value
	}

	end := habits.DateOf(today)
	day := time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	var months []Month
	for !day.After(end) {
		if len(months) == 0 || months[len(months)-1].Name != day.Format("Jan") {
			months = append(months, Month{Name: day.Format("Jan")})
		}
		key := day.Format(habits.DateLayout)
		v, ok := values[key]
		m := &months[len(months)-1]
		m.Cells = append(m.Cells, Cell{Date: key, Value: v, HasData: ok})
		day = day.AddDate(0, 0, 1)
	}
	return months
}

// RenderText draws the year as one line of glyphs per month.
func RenderText(points []habits.HeatmapPoint, dim habits.Dimension, today time.Time) string {
	scale := ScaleFor(dim)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", dim.Name(), habits.DateOf(today).Year())
	for _, m := range Year(points, today) {
		b.WriteString(m.Name)
		b.WriteString(" ")
		for _, c := range m.Cells {
			if !c.HasData {
				b.WriteString(emojiNoData)
				continue
			}
			b.WriteString(scale.Symbol(c.Value))
		}
		b.WriteString("\n")
	}
	return b.String()
}
