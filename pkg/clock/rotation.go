package clock

import (
	"math"
	"time"
)

// Rotation is a repeating rotation of one pointer from Start to Start+2π
// over Period, anchored at Origin. It never completes.
type Rotation struct {
	Hand   Hand
	Start  float64
	Period time.Duration
	Origin time.Time
}

// NewRotation phases hand h to the snapshot. speedRatio divides the hand's
// natural period; values that are not finite and positive count as 1.
func NewRotation(h Hand, snapshot TimeOfDay, origin time.Time, speedRatio float64) Rotation {
	if !finitePositive(speedRatio) {
		speedRatio = 1
	}
	return Rotation{
		Hand:   h,
		Start:  snapshot.Angle(h),
		Period: scalePeriod(h.Period(), speedRatio),
		Origin: origin,
	}
}

// scalePeriod divides period by speedRatio, saturating to [1ns, MaxInt64].
func scalePeriod(period time.Duration, speedRatio float64) time.Duration {
	p := float64(period) / speedRatio
	switch {
	case p >= math.MaxInt64:
		return math.MaxInt64
	case p < 1:
		return 1
	}
	return time.Duration(p)
}

// End is the angle reached when one revolution completes.
func (r Rotation) End() float64 {
	return r.Start + FullTurn
}

// Progress is the fraction of the current revolution elapsed at now, in [0, 1).
// Instants before Origin read as 0.
func (r Rotation) Progress(now time.Time) float64 {
	if r.Period <= 0 {
		return 0
	}
	elapsed := now.Sub(r.Origin)
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed%r.Period) / float64(r.Period)
}

// AngleAt interpolates the rotation at now. The result stays in
// [Start, End) and wraps back to Start each period.
func (r Rotation) AngleAt(now time.Time) float64 {
	return r.Start + FullTurn*r.Progress(now)
}

// Velocity is the angular speed in radians per second.
func (r Rotation) Velocity() float64 {
	if r.Period <= 0 {
		return 0
	}
	return FullTurn / r.Period.Seconds()
}

// normalizeAngle folds an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	return a
}
