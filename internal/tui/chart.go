package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/balkashynov/wellbeing/internal/session"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws scores in [1,10] as one block per value
func Sparkline(values []int) string {
	var b strings.Builder
	for _, v := range values {
		if v < 1 {
			v = 1
		}
		if v > 10 {
			v = 10
		}
		idx := (v - 1) * (len(sparkBlocks) - 1) / 9
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// Bar draws value/limit as a horizontal bar of at most width cells
func Bar(value, limit float64, width int) string {
	if limit <= 0 || width <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / limit * float64(width)))
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

// TrendChart renders mood (and stress) over time, or the empty message
func TrendChart(points []session.TrendPoint, withStress bool, empty string) string {
	if len(points) == 0 {
		return empty
	}

	moods := make([]int, len(points))
	stresses := make([]int, len(points))
	for i, p := range points {
		moods[i] = p.Mood
		stresses[i] = p.Stress
	}

	var b strings.Builder
	b.WriteString("Mood Trend Over Time\n")
	fmt.Fprintf(&b, "mood   %s\n", Sparkline(moods))
	if withStress {
		fmt.Fprintf(&b, "stress %s\n", Sparkline(stresses))
	}
	first := points[0].At.Format("2006-01-02 15:04")
	last := points[len(points)-1].At.Format("2006-01-02 15:04")
	fmt.Fprintf(&b, "%s → %s", first, last)
	return b.String()
}
