package clock

import "errors"

// ErrDegenerateBounds is returned by a layout pass over an empty or
// non-finite view size. Nothing is drawn or animated for such a pass.
var ErrDegenerateBounds = errors.New("clock: degenerate bounds")
