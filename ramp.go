package gradmap

import (
	math "github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
)

// ramp is a piecewise-linear function of a single channel. pos is strictly
// increasing from 0 to 1 and val[i] is the channel value anchored at pos[i].
// A single value per pivot means the ramp is always continuous.
type ramp struct {
	pos []float32
	val []float32
}

// pivots returns the n equally spaced pivot positions over [0, 1].
// Pivot i is computed as float32(i)/float32(n-1) so callers can
// reproduce pivot positions exactly.
func pivots(n int) []float32 {
	pos := make([]float32, n)
	div := float32(n - 1)
	for i := range pos {
		pos[i] = float32(i) / div
	}
	pos[n-1] = 1
	return pos
}

// at evaluates the ramp at t, clamping t to [0, 1]. NaN evaluates as 0.
func (r ramp) at(t float32) float32 {
	n := len(r.pos)
	if !(t > 0) {
		return r.val[0]
	} else if t >= 1 {
		return r.val[n-1]
	}
	// Pivots are equally spaced so the segment can be guessed directly,
	// then corrected for rounding at segment boundaries.
	k := int(math.Floor(t * float32(n-1)))
	k = min(k, n-2)
	for k > 0 && t < r.pos[k] {
		k--
	}
	for k < n-2 && t > r.pos[k+1] {
		k++
	}
	p0, p1 := r.pos[k], r.pos[k+1]
	switch t {
	case p0:
		return r.val[k]
	case p1:
		return r.val[k+1]
	}
	return ms1.Interp(r.val[k], r.val[k+1], (t-p0)/(p1-p0))
}
