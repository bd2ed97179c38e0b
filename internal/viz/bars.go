package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/sorting"
)

// BarHeights scales values linearly into [1, height] rows. Equal values all
// get the full height.
func BarHeights(values []int, height int) []int {
	if height < 1 {
		height = 1
	}
	out := make([]int, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		for i := range out {
			out[i] = height
		}
		return out
	}

	// unsigned distances stay exact for any int range
	span := float64(uint64(hi) - uint64(lo))
	for i, v := range values {
		out[i] = 1 + int(float64(uint64(v)-uint64(lo))/span*float64(height-1)+0.5)
	}
	return out
}

// ColumnWidth picks how many cells each bar gets inside width.
func ColumnWidth(n, width int) int {
	if n == 0 {
		return 1
	}
	return max(1, min(3, width/n))
}

// RenderBars draws a snapshot as height rows of vertical bars. Swapped
// positions take precedence over compared ones; done paints the remaining
// bars in the sorted color.
func RenderBars(snap sorting.Snapshot, height, colWidth int, t Theme, done bool) string {
	if len(snap.Array) == 0 {
		return strings.Repeat("\n", max(0, height-1))
	}

	fill := t.Bar
	if done {
		fill = t.Sorted
	}
	styles := make([]lipgloss.Style, len(snap.Array))
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Foreground(fill)
	}
	for _, i := range snap.Comparing {
		styles[i] = lipgloss.NewStyle().Foreground(t.Compare)
	}
	for _, i := range snap.Swapped {
		styles[i] = lipgloss.NewStyle().Foreground(t.Swap)
	}

	heights := BarHeights(snap.Array, height)
	block := strings.Repeat("█", max(1, colWidth-1))
	blank := strings.Repeat(" ", max(1, colWidth-1))
	gap := ""
	if colWidth > 1 {
		gap = " "
	}

	rows := make([]string, height)
	for r := 0; r < height; r++ {
		level := height - r
		var sb strings.Builder
		for i, h := range heights {
			if h >= level {
				sb.WriteString(styles[i].Render(block))
			} else {
				sb.WriteString(blank)
			}
			sb.WriteString(gap)
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "\n")
}
