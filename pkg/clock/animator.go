package clock

import "time"

// Animator holds the rotation installed on each pointer. Installing on a
// hand replaces whatever was there, so repeated layouts never stack
// competing rotations on one pointer.
type Animator struct {
	rotations [handCount]*Rotation
}

// Install sets the rotation for r.Hand and reports whether an earlier one
// was replaced. Rotations for unknown hands are ignored.
func (a *Animator) Install(r Rotation) bool {
	if !r.Hand.valid() {
		return false
	}
	replaced := a.rotations[r.Hand] != nil
	a.rotations[r.Hand] = &r
	return replaced
}

// Rotation returns the rotation installed on h.
func (a *Animator) Rotation(h Hand) (Rotation, bool) {
	if !h.valid() || a.rotations[h] == nil {
		return Rotation{}, false
	}
	return *a.rotations[h], true
}

// Angle evaluates the rotation installed on h at now, normalized to [0, 2π).
func (a *Animator) Angle(h Hand, now time.Time) (float64, bool) {
	r, ok := a.Rotation(h)
	if !ok {
		return 0, false
	}
	return normalizeAngle(r.AngleAt(now)), true
}

// Len is the number of pointers with an installed rotation.
func (a *Animator) Len() int {
	n := 0
	for _, r := range a.rotations {
		if r != nil {
			n++
		}
	}
	return n
}
