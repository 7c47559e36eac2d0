package clock

import (
	"errors"
	"image"
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"github.com/go-drift/drift/pkg/graphics"

	"github.com/vectornator/clocks/pkg/assets"
)

const (
	shadowBlurRadius = 10
	dialStrokeWidth  = 1
	// backdropDim darkens the blurred background behind the numerals.
	backdropDim = 0.45
	// maxBackdropSide bounds the background raster on very large dials.
	maxBackdropSide = 2048
)

// backdropIDs hands out image cache keys; unique across views.
var backdropIDs atomic.Uintptr

// Face is everything one layout pass produces. It is rebuilt from scratch on
// every pass and never mutated afterwards.
type Face struct {
	Dial     Dial
	Snapshot TimeOfDay
	// Taken is the instant the snapshot was read; rotations start here.
	Taken    time.Time
	Pointers Pointers
	// Numerals is empty when the numeral font is unavailable.
	Numerals []Numeral
	Glyphs   *assets.Numerals
	// Backdrop is the background scaled to cover the dial, nil when the
	// background image is unavailable.
	Backdrop    *image.RGBA
	BackdropKey uintptr
}

// View is a clock face bound to a time source. Layout rebuilds the face for
// a size and re-phases the pointer rotations; Paint draws the face with each
// pointer at its rotation angle for a given instant.
//
// A View is not safe for concurrent use. Drift calls it on the UI thread.
type View struct {
	config   Config
	clock    Clock
	animator Animator

	numerals   *assets.Numerals
	background image.Image
	assetErr   error

	face  Face
	ready bool
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewView creates a view. A nil clock reads the system clock.
func NewView(cfg Config, clk Clock) *View {
	if clk == nil {
		clk = systemClock{}
	}
	return &View{config: cfg.WithDefaults(), clock: clk}
}

// Config returns the resolved configuration.
func (v *View) Config() Config {
	return v.config
}

// LoadAssets resolves the numeral font and the background image from b.
// Every asset that fails is reported as a *assets.ConfigurationError; the
// same error is returned by each later Layout until assets load cleanly.
func (v *View) LoadAssets(b *assets.Bundle) error {
	var errs []error
	v.numerals, v.background = nil, nil

	f, err := b.Font(v.config.Font)
	if err == nil {
		v.numerals, err = assets.RasterizeNumerals(f, v.config.NumeralSize, color.White)
		if err != nil {
			err = &assets.ConfigurationError{Asset: v.config.Font, Kind: assets.KindFont, Err: err}
		}
	}
	if err != nil {
		errs = append(errs, err)
	}

	if v.background, err = b.Image(v.config.Background); err != nil {
		errs = append(errs, err)
	}

	v.assetErr = errors.Join(errs...)
	return v.assetErr
}

// Layout runs one layout pass for a view of the given size:
//
//  1. read the time of day;
//  2. derive the dial from the size;
//  3. size the pointers, the shadow and the background mask;
//  4. place the hour numerals;
//  5. install a phase-aligned repeating rotation on every pointer.
//
// A degenerate size clears the face and returns ErrDegenerateBounds without
// touching the installed rotations. Missing assets do not stop the pass;
// their layers are skipped and the asset error is returned.
func (v *View) Layout(size graphics.Size) error {
	dial, err := NewDial(size)
	if err != nil {
		v.face, v.ready = Face{}, false
		return err
	}

	now := v.clock.Now()
	snapshot := At(now)

	face := Face{
		Dial:     dial,
		Snapshot: snapshot,
		Taken:    now,
		Pointers: NewPointers(dial.Radius),
	}
	if v.numerals != nil {
		placed := PlaceNumerals(dial, v.numerals.Extent())
		face.Numerals = placed[:]
		face.Glyphs = v.numerals
	}
	if v.background != nil {
		side := backdropSide(dial)
		if face.Backdrop = assets.AspectFill(v.background, side, side); face.Backdrop != nil {
			face.BackdropKey = backdropIDs.Add(1)
		}
	}

	for _, h := range Hands {
		v.animator.Install(NewRotation(h, snapshot, now, v.config.SpeedRatio))
	}

	v.face, v.ready = face, true
	return v.assetErr
}

// backdropSide is the raster side for the background behind d, at most
// maxBackdropSide. Painting scales the raster to the dial bounds.
func backdropSide(d Dial) int {
	side := math.Ceil(2 * d.Radius)
	if side >= maxBackdropSide {
		return maxBackdropSide
	}
	return int(side)
}

// Face returns the result of the last successful layout pass.
func (v *View) Face() (Face, bool) {
	return v.face, v.ready
}

// Animator exposes the installed pointer rotations.
func (v *View) Animator() *Animator {
	return &v.animator
}

// PointerAngle is the angle of hand h at now, in radians within [0, 2π).
// Before the first layout it falls back to the live time of day.
func (v *View) PointerAngle(h Hand, now time.Time) float64 {
	if angle, ok := v.animator.Angle(h, now); ok {
		return angle
	}
	return normalizeAngle(At(now).Angle(h))
}

// Paint draws the face laid out last with every pointer at its angle for now.
// Layers are painted bottom to top: shadow, background, dial outline,
// numerals, then the hour, minute and second pointers.
func (v *View) Paint(c Canvas, now time.Time) {
	if !v.ready || c == nil {
		return
	}
	f := v.face
	outline := f.Dial.Outline()

	c.DrawRRectShadow(outline, graphics.BoxShadow{
		Color:      graphics.ColorBlack,
		BlurRadius: shadowBlurRadius,
		BlurStyle:  graphics.BlurStyleOuter,
	})

	if f.Backdrop != nil {
		v.paintBackdrop(c, f, outline)
	}

	dialPaint := graphics.DefaultPaint()
	dialPaint.Style = graphics.PaintStyleStroke
	dialPaint.StrokeWidth = dialStrokeWidth
	dialPaint.Color = graphics.ColorBlack
	c.DrawCircle(f.Dial.Center, f.Dial.Radius, dialPaint)

	for _, n := range f.Numerals {
		g, ok := f.Glyphs.Glyph(n.Value)
		if !ok || g.Image == nil {
			continue
		}
		c.DrawImage(g.Image, graphics.Offset{
			X: n.Center.X - g.Width()/2,
			Y: n.Center.Y - g.Height()/2,
		})
	}

	for _, h := range Hands {
		p := f.Pointers.Of(h)
		if !p.Visible() {
			continue
		}
		paintPointer(c, f.Dial.Center, p, v.PointerAngle(h, now))
	}
}

func (v *View) paintBackdrop(c Canvas, f Face, outline graphics.RRect) {
	c.Save()
	c.ClipRRect(outline)
	b := f.Backdrop.Bounds()
	src := graphics.RectFromLTWH(0, 0, float64(b.Dx()), float64(b.Dy()))
	c.DrawImageRect(f.Backdrop, src, f.Dial.Bounds, graphics.FilterQualityLow, f.BackdropKey)
	if sigma := v.config.BlurSigma; sigma > 0 {
		c.SaveLayerBlur(f.Dial.Bounds, sigma, sigma)
		c.Restore()
	}
	dim := graphics.DefaultPaint()
	dim.Color = graphics.ColorBlack.WithAlpha(backdropDim)
	c.DrawRect(f.Dial.Bounds, dim)
	c.Restore()
}

func paintPointer(c Canvas, center graphics.Offset, p Pointer, angle float64) {
	paint := graphics.DefaultPaint()
	paint.Style = graphics.PaintStyleStroke
	paint.StrokeWidth = p.Width
	paint.StrokeCap = graphics.CapRound
	paint.Color = p.Color

	c.Save()
	c.Translate(center.X, center.Y)
	c.Rotate(angle)
	c.DrawLine(graphics.Offset{}, p.Tip(), paint)
	c.Restore()
}
