package splitpanel

import "github.com/charmbracelet/lipgloss"

const (
	ScrollThumbChar = "█"
	ScrollTrackChar = "│"
)

// scrollbar describes a vertical track of height rows over total lines,
// scrolled so that line offset is at the top.
type scrollbar struct {
	height, total, offset int
}

// needed reports whether the content overflows the track.
func (s scrollbar) needed() bool {
	return s.total > s.height
}

// thumb returns the first row of the thumb and its length. The thumb is
// never taller than height-2 so that the track stays visible at both ends.
func (s scrollbar) thumb() (start, length int) {
	length = min(max(s.height*s.height/s.total, 1), max(s.height-2, 1))

	room := s.height - length
	if room <= 0 {
		return 0, length
	}
	scrollable := max(s.total-s.height, 1)
	start = min(max(s.offset*room/scrollable, 0), room)
	return start, length
}

// BuildScrollbar renders one cell per row. The thumb takes the active
// color only while its panel has focus. Content that fits gets blank cells.
func BuildScrollbar(viewHeight, totalItems, scrollOffset int, activeColor, trackColor lipgloss.Color, focused bool) []string {
	cells := make([]string, viewHeight)
	bar := scrollbar{height: viewHeight, total: totalItems, offset: scrollOffset}
	if !bar.needed() {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumbColor := trackColor
	if focused {
		thumbColor = activeColor
	}
	track := lipgloss.NewStyle().Foreground(trackColor).Render(ScrollTrackChar)
	thumb := lipgloss.NewStyle().Foreground(thumbColor).Render(ScrollThumbChar)

	start, length := bar.thumb()
	for i := range cells {
		if i >= start && i < start+length {
			cells[i] = thumb
		} else {
			cells[i] = track
		}
	}
	return cells
}
