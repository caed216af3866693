package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// ShimmerConfig holds configuration for the highlight sweep on the selected section
type ShimmerConfig struct {
	Enabled        bool
	SpeedMs        int     // tick interval
	WidthRatio     float64 // width of the bright band relative to the text
	CycleMs        int     // time for one sweep
	PauseBetweenMs int     // pause between sweeps
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig(enabled bool) ShimmerConfig {
	return ShimmerConfig{
		Enabled:        enabled,
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// ShimmerState holds the current position of the sweep
type ShimmerState struct {
	Config     ShimmerConfig
	Center     float64
	LastUpdate time.Time
	Active     bool
	TrueColor  bool
	pausedAt   time.Time
	paused     bool
}

// shimmerTickMsg advances the sweep
type shimmerTickMsg struct{}

// NewShimmerState creates a new shimmer state
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	return &ShimmerState{
		Config:     config,
		LastUpdate: time.Now(),
		Active:     config.Enabled,
		TrueColor:  os.Getenv("COLORTERM") == "truecolor",
	}
}

// Advance moves the band along text of the given length
func (s *ShimmerState) Advance(textLen int, now time.Time) {
	if !s.Active || textLen <= 0 {
		return
	}
	if now.Sub(s.LastUpdate).Milliseconds() < int64(s.Config.SpeedMs) {
		return
	}
	s.LastUpdate = now

	if s.paused {
		if now.Sub(s.pausedAt).Milliseconds() >= int64(s.Config.PauseBetweenMs) {
			s.paused = false
			s.Center = -float64(textLen) * s.Config.WidthRatio
		}
		return
	}

	ticks := float64(s.Config.CycleMs) / float64(s.Config.SpeedMs)
	distance := float64(textLen) * (1.0 + 2.0*s.Config.WidthRatio)
	s.Center += distance / ticks

	end := float64(textLen) * (1.0 + s.Config.WidthRatio)
	if s.Center >= end {
		s.Center = end
		s.paused = true
		s.pausedAt = now
	}
}

// Reset restarts the sweep (call when the selection changes)
func (s *ShimmerState) Reset() {
	s.Center = 0
	s.paused = false
	s.LastUpdate = time.Now()
}

// Render draws text with the band at its current position
func (s *ShimmerState) Render(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	s.Advance(len(runes), time.Now())

	if !s.Active {
		// static accent, ColorAccentBright
		return fmt.Sprintf("\033[38;2;94;234;212m%s\033[0m", text)
	}

	sigma := math.Max(1.0, s.Config.WidthRatio*float64(len(runes))/2.0)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.Center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		if s.TrueColor {
			// blend #A9C2BB towards #F0FDFA
			red := int(169*(1-w) + 240*w)
			green := int(194*(1-w) + 253*w)
			blue := int(187*(1-w) + 250*w)
			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c", red, green, blue, r)
		} else if w > 0.5 {
			fmt.Fprintf(&b, "\033[38;5;159m%c", r)
		} else {
			fmt.Fprintf(&b, "\033[38;5;250m%c", r)
		}
	}
	b.WriteString("\033[0m")
	return b.String()
}

// TickInterval returns the interval for tea.Tick commands
func (s *ShimmerState) TickInterval() time.Duration {
	return time.Duration(s.Config.SpeedMs) * time.Millisecond
}

// ShouldTick returns true if the sweep is animating
func (s *ShimmerState) ShouldTick() bool {
	return s.Active
}
