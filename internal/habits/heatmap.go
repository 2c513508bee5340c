package habits

// HeatmapPoint is one cell of the calendar heatmap.
type HeatmapPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// Project maps each entry to a heatmap point, keeping input order.
//
// Coding emits the level, clamped to 0..2. Doomscroll emits 1 when the user
// doomscrolled and 0 otherwise; painting avoided days as the "good" color is
// left to the renderer's palette.
func Project(history []Entry, dim Dimension) []HeatmapPoint {
	points := make([]HeatmapPoint, 0, len(history))
	for _, e := range history {
		points = append(points, HeatmapPoint{Date: e.Date, Value: Value(e, dim)})
	}
	return points
}

// Value is the heatmap value of a single entry.
func Value(e Entry, dim Dimension) int {
	switch dim {
	case Coding:
		return max(0, min(e.CodingLevel, 2))
	case Doomscroll:
		if e.Doomscrolled {
			return 1
		}
	}
	return 0
}
