package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	barColor     = "#3a7bd5"
	compareColor = "#ffcc00"
	swapColor    = "#ff4444"
)

// SnapshotToSVG draws a snapshot as vertical bars, colouring compared and
// swapped positions.
func SnapshotToSVG(snap sorting.Snapshot, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if n := len(snap.Array); n > 0 {
		lo, hi := snap.Array[0], snap.Array[0]
		for _, v := range snap.Array {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		span := float64(uint64(hi) - uint64(lo))
		if span == 0 {
			span = 1
		}

		colors := make([]string, n)
		for i := range colors {
			colors[i] = barColor
		}
		for _, i := range snap.Comparing {
			colors[i] = compareColor
		}
		for _, i := range snap.Swapped {
			colors[i] = swapColor
		}

		barW := float64(width) / float64(n)
		for i, v := range snap.Array {
			// keep the smallest bar visible
			h := (0.1 + 0.9*float64(uint64(v)-uint64(lo))/span) * float64(height)
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(i)*barW+1, float64(height)-h, barW-2, h, colors[i]))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ProgressToSVG plots cumulative comparisons and swaps against step index.
func ProgressToSVG(trace sorting.Trace, width, height int) string {
	if len(trace) < 2 {
		return ""
	}

	comparisons, swaps := Cumulative(trace)
	peak := comparisons[len(comparisons)-1]
	if s := swaps[len(swaps)-1]; s > peak {
		peak = s
	}
	if peak == 0 {
		peak = 1
	}

	path := func(series []float64) string {
		var sb strings.Builder
		for i, v := range series {
			x := float64(i) / float64(len(series)-1) * float64(width)
			y := float64(height) - v/peak*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		return sb.String()
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
</svg>`, width, height, width, height, compareColor, path(comparisons), swapColor, path(swaps))
}

// Cumulative returns running totals of comparisons and swaps per step.
func Cumulative(trace sorting.Trace) (comparisons, swaps []float64) {
	comparisons = make([]float64, len(trace))
	swaps = make([]float64, len(trace))
	var c, s float64
	for i, snap := range trace {
		switch snap.Op {
		case sorting.OpCompare:
			c++
		case sorting.OpSwap:
			s++
		}
		comparisons[i], swaps[i] = c, s
	}
	return comparisons, swaps
}
