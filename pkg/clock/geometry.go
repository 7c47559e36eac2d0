package clock

import (
	"math"

	"github.com/go-drift/drift/pkg/graphics"
)

// Dial is the circular face inscribed in the view bounds.
type Dial struct {
	// Bounds is the square that circumscribes the dial circle.
	Bounds graphics.Rect
	Center graphics.Offset
	Radius float64
}

// NewDial derives the dial from the view size. The radius is half the
// smaller dimension and the circle is centered in the view.
// It returns ErrDegenerateBounds for empty or non-finite sizes.
func NewDial(size graphics.Size) (Dial, error) {
	if !finitePositive(size.Width) || !finitePositive(size.Height) {
		return Dial{}, ErrDegenerateBounds
	}
	radius := min(size.Width, size.Height) / 2
	center := graphics.Offset{X: size.Width / 2, Y: size.Height / 2}
	return Dial{
		Bounds: graphics.Rect{
			Left:   center.X - radius,
			Top:    center.Y - radius,
			Right:  center.X + radius,
			Bottom: center.Y + radius,
		},
		Center: center,
		Radius: radius,
	}, nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Outline is the dial circle as a fully rounded rect, usable for shadows
// and clipping.
func (d Dial) Outline() graphics.RRect {
	return graphics.RRectFromRectAndRadius(d.Bounds, graphics.CircularRadius(d.Radius))
}

// PointAt converts a polar position around the dial center to view
// coordinates. Angles are in radians, clockwise from 12 o'clock.
func (d Dial) PointAt(angle, distance float64) graphics.Offset {
	return graphics.Offset{
		X: d.Center.X + distance*math.Sin(angle),
		Y: d.Center.Y - distance*math.Cos(angle),
	}
}
