// Package lightbox is the full-screen single image viewer state machine:
// closed -> open(index) -> closed.
package lightbox

import "fmt"

// MinSwipeDistance is the horizontal displacement, in pixels, a touch must
// cover before it counts as a swipe.
const MinSwipeDistance = 50

const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyEscape     = "Escape"
)

type Lightbox struct {
	open   bool
	index  int
	length int

	touching   bool
	touchStart float64
	touchEnd   float64
	moved      bool
}

// Open shows the item at index within a list of length items. Any previous
// position is discarded. An empty list keeps the lightbox closed.
func (l *Lightbox) Open(index, length int) {
	l.resetTouch()
	if length <= 0 {
		l.open = false
		l.index = 0
		l.length = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= length {
		index = length - 1
	}
	l.open = true
	l.index = index
	l.length = length
}

func (l *Lightbox) Close() {
	l.open = false
	l.resetTouch()
}

func (l *Lightbox) IsOpen() bool { return l.open }

func (l *Lightbox) Index() int { return l.index }

func (l *Lightbox) Len() int { return l.length }

func (l *Lightbox) Next() {
	if !l.open || l.length == 0 {
		return
	}
	l.index = (l.index + 1) % l.length
}

func (l *Lightbox) Prev() {
	if !l.open || l.length == 0 {
		return
	}
	l.index = (l.index - 1 + l.length) % l.length
}

// NextIndex and PrevIndex report where Next and Prev would land without
// moving.
func (l *Lightbox) NextIndex() int {
	if l.length == 0 {
		return 0
	}
	return (l.index + 1) % l.length
}

func (l *Lightbox) PrevIndex() int {
	if l.length == 0 {
		return 0
	}
	return (l.index - 1 + l.length) % l.length
}

// Key handles a keyboard event and reports whether it was consumed.
func (l *Lightbox) Key(key string) bool {
	if !l.open {
		return false
	}
	switch key {
	case KeyArrowRight:
		l.Next()
	case KeyArrowLeft:
		l.Prev()
	case KeyEscape:
		l.Close()
	default:
		return false
	}
	return true
}

func (l *Lightbox) TouchStart(x float64) {
	l.touching = true
	l.touchStart = x
	l.moved = false
}

func (l *Lightbox) TouchMove(x float64) {
	if !l.touching {
		return
	}
	l.touchEnd = x
	l.moved = true
}

// TouchEnd finishes a gesture. A leftward swipe of at least MinSwipeDistance
// advances, a rightward one goes back, anything shorter is a tap.
func (l *Lightbox) TouchEnd() {
	defer l.resetTouch()
	if !l.touching || !l.moved || !l.open {
		return
	}
	distance := l.touchStart - l.touchEnd
	switch {
	case distance >= MinSwipeDistance:
		l.Next()
	case distance <= -MinSwipeDistance:
		l.Prev()
	}
}

// Counter renders the 1-based position, e.g. "3 / 12".
func (l *Lightbox) Counter() string {
	if l.length == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", l.index+1, l.length)
}

func (l *Lightbox) resetTouch() {
	l.touching = false
	l.moved = false
	l.touchStart = 0
	l.touchEnd = 0
}
