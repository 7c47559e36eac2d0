package clock

import (
	"math"
	"time"
)

// Clock provides wall-clock time. It has the same shape as animation.Clock
// so the Drift animation clock (and its test fakes) can drive a view directly.
type Clock interface {
	Now() time.Time
}

// TimeOfDay is a wall-clock snapshot on a twelve-hour dial.
//
// Hours and Minutes hold whole units. Seconds carries the sub-second
// fraction so the second pointer is phased to the instant the snapshot was
// taken. The creep of the coarser pointers comes from the angle contract
// (see MinuteDegrees and HourDegrees), not from these fields.
type TimeOfDay struct {
	Hours   float64 // [0, 12)
	Minutes float64 // [0, 60)
	Seconds float64 // [0, 60)
}

// At captures the time of day of t in t's own location.
func At(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return NewTimeOfDay(float64(h), float64(m), float64(s)+float64(t.Nanosecond())/float64(time.Second))
}

// Snapshot reads the current time from c. A nil clock yields midnight.
func Snapshot(c Clock) TimeOfDay {
	if c == nil {
		return TimeOfDay{}
	}
	return At(c.Now())
}

// NewTimeOfDay builds a snapshot from raw components. Components that cannot
// be read (NaN, infinite, negative) become 0. Hours wrap modulo 12; minutes
// and seconds clamp to [0, 60).
func NewTimeOfDay(hours, minutes, seconds float64) TimeOfDay {
	return TimeOfDay{
		Hours:   math.Mod(component(hours), 12),
		Minutes: clampUnit(component(minutes)),
		Seconds: clampUnit(component(seconds)),
	}
}

func component(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

var belowSixty = math.Nextafter(60, 0)

func clampUnit(v float64) float64 {
	if v >= 60 {
		return belowSixty
	}
	return v
}

// Degrees returns the pointer angle for hand h in degrees, clockwise from 12.
func (t TimeOfDay) Degrees(h Hand) float64 {
	switch h {
	case HandSecond:
		return SecondDegrees(t.Seconds)
	case HandMinute:
		return MinuteDegrees(t.Minutes, t.Seconds)
	case HandHour:
		return HourDegrees(t.Hours, t.Minutes)
	default:
		return 0
	}
}

// Angle returns the pointer angle for hand h in radians.
func (t TimeOfDay) Angle(h Hand) float64 {
	return Radians(t.Degrees(h))
}
