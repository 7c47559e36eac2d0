package clock

import "math"

const (
	degreesPerSecond = 360.0 / 60
	degreesPerMinute = 360.0 / 60
	degreesPerHour   = 360.0 / 12

	// FullTurn is one revolution in radians.
	FullTurn = 2 * math.Pi
)

// SecondDegrees is the second pointer angle: seconds × 6°.
func SecondDegrees(seconds float64) float64 {
	return seconds * degreesPerSecond
}

// MinuteDegrees is the minute pointer angle including the creep from the
// seconds already elapsed in the current minute: (minutes + seconds/60) × 6°.
func MinuteDegrees(minutes, seconds float64) float64 {
	return (minutes + seconds/60) * degreesPerMinute
}

// HourDegrees is the hour pointer angle including the creep from the minutes
// already elapsed in the current hour: (hours mod 12 + minutes/60) × 30°.
func HourDegrees(hours, minutes float64) float64 {
	h := math.Mod(hours, 12)
	if h < 0 {
		h += 12
	}
	return (h + minutes/60) * degreesPerHour
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
