// Package render rasterizes color maps into images and terminal swatches for previewing.
//
// Renderers hold scratch buffers and are not safe for concurrent use.
package render

import (
	"errors"

	math "github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
)

// Field is a 2D scalar field evaluated in batches, such as the data
// underlying a contour plot.
type Field interface {
	// Evaluate evaluates the field over pos positions and stores the
	// resulting values in dst. dst and pos must be of same length.
	Evaluate(pos []ms2.Vec, dst []float32, userData any) error
	// Bounds returns the domain over which the field is rendered.
	Bounds() ms2.Box
}

var (
	errEmptyBuffers         = errors.New("empty buffers")
	errMismatchBufferLength = errors.New("position and value buffer length mismatch")
)

// SinField is the field sin(x)*sin(y) over the square [0, 2π*Periods]².
// A zero Periods renders 3 periods.
type SinField struct {
	Periods float32
}

var _ Field = SinField{} // Interface implementation compile-time check.

func (f SinField) Bounds() ms2.Box {
	side := 2 * math.Pi * f.periods()
	return ms2.Box{Max: ms2.Vec{X: side, Y: side}}
}

func (f SinField) Evaluate(pos []ms2.Vec, dst []float32, userData any) error {
	if len(pos) != len(dst) {
		return errMismatchBufferLength
	} else if len(pos) == 0 {
		return errEmptyBuffers
	}
	for i, p := range pos {
		dst[i] = math.Sin(p.X) * math.Sin(p.Y)
	}
	return nil
}

func (f SinField) periods() float32 {
	if f.Periods <= 0 {
		return 3
	}
	return f.Periods
}
