package clock

import (
	"fmt"
	"time"

	"github.com/go-drift/drift/pkg/graphics"
)

// Hand identifies one of the three clock pointers.
type Hand int

const (
	// HandSecond is the second pointer.
	HandSecond Hand = iota
	// HandMinute is the minute pointer.
	HandMinute
	// HandHour is the hour pointer.
	HandHour

	handCount = 3
)

// Hands lists the pointers in paint order, bottom to top.
var Hands = [handCount]Hand{HandHour, HandMinute, HandSecond}

// String returns the animation key of the hand.
func (h Hand) String() string {
	switch h {
	case HandSecond:
		return "seconds"
	case HandMinute:
		return "minutes"
	case HandHour:
		return "hours"
	default:
		return fmt.Sprintf("Hand(%d)", int(h))
	}
}

// Period is the time the pointer takes for one revolution at real speed.
func (h Hand) Period() time.Duration {
	switch h {
	case HandSecond:
		return time.Minute
	case HandMinute:
		return time.Hour
	case HandHour:
		return 12 * time.Hour
	default:
		return 0
	}
}

func (h Hand) valid() bool {
	return h >= 0 && h < handCount
}

// ColorLightGray matches the light gray used for the minute pointer.
var ColorLightGray = graphics.RGB(0xAA, 0xAA, 0xAA)

// Pointer describes one clock hand: a straight stroke from the dial center
// to a tip Length units "up" before rotation.
type Pointer struct {
	Width  float64
	Length float64
	Color  graphics.Color
}

// Visible reports whether the pointer has anything to draw.
func (p Pointer) Visible() bool {
	return p.Width > 0 && p.Length > 0
}

// Tip is the pointer end relative to the dial center, before rotation.
func (p Pointer) Tip() graphics.Offset {
	return graphics.Offset{X: 0, Y: -p.Length}
}

type pointerStyle struct {
	width float64
	inset float64 // distance between the tip and the dial edge
	color graphics.Color
}

var pointerStyles = [handCount]pointerStyle{
	HandSecond: {width: 4, inset: 40, color: graphics.ColorWhite},
	HandMinute: {width: 5, inset: 60, color: ColorLightGray},
	HandHour:   {width: 6, inset: 80, color: graphics.ColorRed},
}

// Pointers holds one descriptor per hand, indexed by Hand.
type Pointers [handCount]Pointer

// NewPointers sizes the three pointers for a dial of the given radius.
// Lengths are radius minus the hand's inset, clamped at zero for small dials.
func NewPointers(radius float64) Pointers {
	var p Pointers
	for h, style := range pointerStyles {
		p[h] = Pointer{
			Width:  style.width,
			Length: max(radius-style.inset, 0),
			Color:  style.color,
		}
	}
	return p
}

// Of returns the pointer for hand h.
func (p Pointers) Of(h Hand) Pointer {
	if !h.valid() {
		return Pointer{}
	}
	return p[h]
}
