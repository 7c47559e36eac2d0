// Package clock computes and paints an analog clock face.
//
// The face is a circular dial inscribed in the view bounds, with twelve hour
// numerals around its edge and three pointers (hour, minute, second) that
// turn continuously from their position at the last layout pass.
//
// # Layout
//
// Every layout pass reads the time of day once, derives the dial from the
// view size and installs one repeating rotation per pointer:
//
//	view := clock.NewView(clock.DefaultConfig(), nil)
//	_ = view.LoadAssets(assets.NewBundle(fsys))
//	if err := view.Layout(graphics.Size{Width: 300, Height: 300}); err != nil {
//	    // degenerate size or missing asset
//	}
//
// A rotation goes from the snapshot angle to one full turn past it over the
// pointer's natural period (one minute, one hour, twelve hours) divided by
// Config.SpeedRatio, then repeats. Re-running layout replaces rotations
// instead of stacking them.
//
// # Angles
//
// Angles are clockwise from 12 o'clock. The minute and hour pointers creep:
//
//	second = s × 6°
//	minute = (m + s/60) × 6°
//	hour   = (h mod 12 + m/60) × 30°
//
// # Painting
//
// Paint draws onto any Canvas; *graphics.Canvas implementations from Drift
// satisfy it directly.
package clock
