// Package carousel holds the scroll state of a horizontal image strip.
//
// All transitions are pure functions over State so they can be exercised
// without a browser. The page script in internal/web follows the same rules;
// the constants below reach it through the carousel's data attributes.
package carousel

import "math"

const (
	// DefaultInterval is the auto-advance period in milliseconds.
	DefaultInterval = 4000

	// EdgeThreshold is the dead zone, in pixels, used for arrow visibility.
	EdgeThreshold = 10.0

	// EndTolerance is how close to the end an offset must be to wrap.
	EndTolerance = 5.0
)

type State struct {
	Offset        float64
	ViewportWidth float64
	ContentWidth  float64
	ItemCount     int
	Paused        bool
}

// New returns the state of a freshly mounted strip, before any layout pass.
func New(itemCount int) State {
	return State{ItemCount: itemCount}
}

// Measured reports whether a layout pass has happened.
func (s State) Measured() bool {
	return s.ViewportWidth > 0
}

// Navigable reports whether arrows and auto-advance apply at all.
func (s State) Navigable() bool {
	return s.ItemCount > 1
}

func (s State) MaxOffset() float64 {
	return math.Max(0, s.ContentWidth-s.ViewportWidth)
}

func (s State) CanScrollLeft() bool {
	if !s.Navigable() || !s.Measured() {
		return false
	}
	return s.Offset > EdgeThreshold
}

func (s State) CanScrollRight() bool {
	if !s.Navigable() || !s.Measured() {
		return false
	}
	return s.Offset < s.MaxOffset()-EdgeThreshold
}

// Progress is the scroll position as a percentage of the scrollable range.
func (s State) Progress() float64 {
	max := s.MaxOffset()
	if max == 0 {
		return 0
	}
	return s.Offset / max * 100
}

func (s State) atEnd() bool {
	return s.Offset >= s.MaxOffset()-EndTolerance
}

// Resized records a layout pass and re-clamps the offset.
func Resized(s State, viewportWidth, contentWidth float64) State {
	s.ViewportWidth = math.Max(0, viewportWidth)
	s.ContentWidth = math.Max(0, contentWidth)
	s.Offset = clamp(s.Offset, 0, s.MaxOffset())
	return s
}

// Scrolled records a scroll event.
func Scrolled(s State, offset float64) State {
	s.Offset = clamp(offset, 0, s.MaxOffset())
	return s
}

// Hover pauses auto-advance while the pointer is over the strip. It does not
// touch the timer; the next tick is simply skipped while paused.
func Hover(s State, hovering bool) State {
	s.Paused = hovering
	return s
}

// Tick is one auto-advance step.
func Tick(s State) State {
	if s.Paused {
		return s
	}
	return Next(s)
}

// Next advances by one viewport width, wrapping to the start when already at
// (or within EndTolerance of) the end.
func Next(s State) State {
	if !s.Navigable() || !s.Measured() {
		return s
	}
	if s.atEnd() {
		s.Offset = 0
		return s
	}
	s.Offset = math.Min(s.Offset+s.ViewportWidth, s.MaxOffset())
	return s
}

// Prev retreats by one viewport width and stops at the start.
func Prev(s State) State {
	if !s.Navigable() || !s.Measured() {
		return s
	}
	s.Offset = math.Max(s.Offset-s.ViewportWidth, 0)
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
