// Package clockview provides the Drift widget for the analog clock.
package clockview

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	drifterrors "github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/semantics"

	"github.com/vectornator/clocks/pkg/assets"
	"github.com/vectornator/clocks/pkg/clock"
)

// DefaultExtent is the side of the clock when the parent leaves a dimension
// unbounded.
const DefaultExtent = 300

// ClockView displays an analog clock that keeps running on its own.
//
// The clock fills the space its parent gives it; the dial is the largest
// circle centered in that space. Numerals and the background come from
// Assets and are skipped (with an error report) when missing.
//
//	clockview.ClockView{
//	    Config: clock.Config{SpeedRatio: 60},
//	    Assets: assets.NewBundle(appAssets),
//	}
type ClockView struct {
	core.StatefulBase

	// Config selects assets and playback speed. Zero fields take defaults.
	Config clock.Config

	// Assets is the bundle fonts and images are loaded from.
	Assets *assets.Bundle

	// Extent is the side used for unbounded constraints. Zero means DefaultExtent.
	Extent float64

	// SemanticLabel describes the clock to screen readers. Empty means "Clock".
	SemanticLabel string
}

func (c ClockView) CreateState() core.State {
	return &clockViewState{}
}

// frameClock reads the animation clock, so views follow fake clocks in tests.
type frameClock struct{}

func (frameClock) Now() time.Time { return animation.Now() }

type clockViewState struct {
	core.StateBase
	view   *clock.View
	ticker *animation.Ticker
	frame  time.Time
}

func (s *clockViewState) InitState() {
	s.load(s.Element().Widget().(ClockView))

	s.ticker = animation.NewTicker(func(time.Duration) {
		s.SetState(func() {
			s.frame = animation.Now()
		})
	})
	s.ticker.Start()
	s.OnDispose(s.ticker.Stop)
}

func (s *clockViewState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(ClockView)
	w := s.Element().Widget().(ClockView)
	if old.Config != w.Config || old.Assets != w.Assets {
		s.load(w)
	}
}

// load replaces the view; the next layout pass re-phases every pointer.
func (s *clockViewState) load(w ClockView) {
	view := clock.NewView(w.Config, frameClock{})
	// Asset errors are kept by the view and surface on every layout pass.
	_ = view.LoadAssets(w.Assets)
	s.view = view
}

func (s *clockViewState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(ClockView)

	extent := w.Extent
	if extent <= 0 {
		extent = DefaultExtent
	}
	label := w.SemanticLabel
	if label == "" {
		label = "Clock"
	}

	return clockRender{
		view:   s.view,
		frame:  s.frame,
		extent: extent,
		label:  label,
	}
}

type clockRender struct {
	core.RenderObjectBase
	view   *clock.View
	frame  time.Time
	extent float64
	label  string
}

func (c clockRender) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderClock{
		view:   c.view,
		frame:  c.frame,
		extent: c.extent,
		label:  c.label,
	}
	r.SetSelf(r)
	return r
}

func (c clockRender) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	r, ok := renderObject.(*renderClock)
	if !ok {
		return
	}
	if r.view != c.view || r.extent != c.extent {
		r.view = c.view
		r.extent = c.extent
		r.MarkNeedsLayout()
	}
	r.label = c.label
	if !r.frame.Equal(c.frame) {
		r.frame = c.frame
		r.MarkNeedsPaint()
	}
}

type renderClock struct {
	layout.RenderBoxBase
	view   *clock.View
	frame  time.Time
	extent float64
	label  string

	// reported is the last layout error sent to the error handler.
	reported string
	// layouts counts layout passes run on the view.
	layouts int
}

func (r *renderClock) PerformLayout() {
	constraints := r.Constraints()
	width := constraints.MaxWidth
	if math.IsInf(width, 1) {
		width = r.extent
	}
	height := constraints.MaxHeight
	if math.IsInf(height, 1) {
		height = r.extent
	}
	width = min(max(width, constraints.MinWidth), constraints.MaxWidth)
	height = min(max(height, constraints.MinHeight), constraints.MaxHeight)
	r.SetSize(graphics.Size{Width: width, Height: height})

	if r.view == nil {
		return
	}
	r.layouts++
	r.report(r.view.Layout(r.Size()))
}

// report forwards layout errors to the Drift error handler, once per
// distinct failure so a missing asset does not log on every frame.
func (r *renderClock) report(err error) {
	if err == nil {
		r.reported = ""
		return
	}
	if msg := err.Error(); msg != r.reported {
		r.reported = msg
		kind := drifterrors.KindInit
		if errors.Is(err, clock.ErrDegenerateBounds) {
			kind = drifterrors.KindRender
		}
		drifterrors.Report(&drifterrors.DriftError{
			Op:   "clockview.layout",
			Kind: kind,
			Err:  err,
		})
	}
}

func (r *renderClock) Paint(ctx *layout.PaintContext) {
	if r.view == nil {
		return
	}
	r.view.Paint(ctx.Canvas, animation.Now())
}

func (r *renderClock) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	return false
}

// IsRepaintBoundary isolates the per-frame repaint of the pointers.
func (r *renderClock) IsRepaintBoundary() bool {
	return true
}

// DescribeSemanticsConfiguration implements SemanticsDescriber for accessibility.
func (r *renderClock) DescribeSemanticsConfiguration(config *semantics.SemanticsConfiguration) bool {
	config.IsSemanticBoundary = true
	config.Properties.Role = semantics.SemanticsRoleImage
	config.Properties.Label = r.label
	config.Properties.Value = formatTime(clock.At(animation.Now()))
	return true
}

// formatTime renders a time of day the way it reads on the dial.
func formatTime(t clock.TimeOfDay) string {
	h := int(t.Hours)
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, int(t.Minutes))
}
