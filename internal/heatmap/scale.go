package heatmap

import "habit-tracker/internal/habits"

// Scale is an ordinal color scale: Domain[i] is painted Colors[i] on the web
// and Emoji[i] in chat.
type Scale struct {
	Domain []int    `json:"domain"`
	Colors []string `json:"range"`
	Emoji  []string `json:"-"`
}

const (
	colorEmpty  = "#e5e7eb" // gray-200
	colorGood   = "#22c55e" // green-500
	colorStrong = "#eab308" // yellow-500

	emojiNoData = "▫️"
)

// ScaleFor returns the palette for dim. The doomscroll domain is inverted so
// that a day without doomscrolling (value 0) is the highlighted color.
func ScaleFor(dim habits.Dimension) Scale {
	if dim == habits.Doomscroll {
		return Scale{
			Domain: []int{1, 0},
			Colors: []string{colorEmpty, colorGood},
			Emoji:  []string{"⬜", "🟩"},
		}
	}
	return Scale{
		Domain: []int{0, 1, 2},
		Colors: []string{colorEmpty, colorGood, colorStrong},
		Emoji:  []string{"⬜", "🟩", "🟨"},
	}
}

func (s Scale) index(v int) int {
	for i, d := range s.Domain {
		if d == v {
			return i
		}
	}
	return 0
}

// Color returns the web color for v; values outside the domain get the
// first color.
func (s Scale) Color(v int) string {
	return s.Colors[s.index(v)]
}

// Symbol returns the chat glyph for v.
func (s Scale) Symbol(v int) string {
	return s.Emoji[s.index(v)]
}
