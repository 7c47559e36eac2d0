package clock

import (
	"strconv"

	"github.com/go-drift/drift/pkg/graphics"
)

const (
	numeralCount = 12

	// numeralGap is the distance between the dial edge and the outer edge
	// of a numeral glyph.
	numeralGap = 10
)

// Numeral is the placement of one hour label on the dial.
type Numeral struct {
	Value int
	// Angle is the clockwise offset from 12 o'clock in radians.
	Angle float64
	// Center is where the glyph center lands, in view coordinates.
	Center   graphics.Offset
	Distance float64
}

// Label is the text drawn for the numeral.
func (n Numeral) Label() string {
	return strconv.Itoa(n.Value)
}

// NumeralAngle is the dial angle of hour label n (1..12) in radians.
func NumeralAngle(n int) float64 {
	return Radians(float64(n%numeralCount) * degreesPerHour)
}

// PlaceNumerals computes the twelve hour label positions for a dial. extent
// is the glyph size along the radius; glyph centers sit on a circle of
// radius (dial radius − gap − extent/2), never below zero.
func PlaceNumerals(d Dial, extent float64) [numeralCount]Numeral {
	distance := max(d.Radius-numeralGap-extent/2, 0)
	var out [numeralCount]Numeral
	for i := range out {
		n := i + 1
		angle := NumeralAngle(n)
		out[i] = Numeral{
			Value:    n,
			Angle:    angle,
			Center:   d.PointAt(angle, distance),
			Distance: distance,
		}
	}
	return out
}
