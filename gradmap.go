// Package gradmap builds continuous color maps from ordered lists of RGB colors.
//
// A [Map] anchors each color of a [Sequence] at equally spaced pivot points over [0, 1]
// and linearly interpolates every channel between neighbouring pivots.
package gradmap

import (
	"errors"
	"fmt"
	"image/color"

	math "github.com/chewxy/math32"
)

// DefaultGradation is the lookup table size used when Build receives a zero gradation.
const DefaultGradation = 1024

var (
	// ErrInvalidColorFormat is returned when a color does not have exactly 3 channel values.
	ErrInvalidColorFormat = errors.New("invalid color format: want exactly 3 channel values")
	// ErrDegenerateSequence is returned when a map is built from fewer than 2 colors,
	// which leaves pivot spacing undefined.
	ErrDegenerateSequence = errors.New("degenerate color sequence: need at least 2 colors")
	// ErrChannelRange is returned for channel values outside [0, 1] or NaN.
	ErrChannelRange = errors.New("channel value outside [0, 1]")
	// ErrInvalidGradation is returned for negative gradations.
	ErrInvalidGradation = errors.New("invalid gradation")
)

// badColor is returned by [Map.Conversion] for NaN and infinite inputs.
var badColor = color.RGBA{R: 255, A: 255}

// Map is a color map: a function from a normalized scalar in [0, 1] to a [Color].
// A Map is immutable once built and safe for concurrent use.
type Map struct {
	name   string
	colors Sequence
	ramps  [3]ramp
	// table holds gradation precomputed samples, table[i] = At(i/(gradation-1)).
	table []Color
}

// Build creates a color map named name from colors. Color i of n is anchored
// at pivot i/(n-1). gradation sets the number of samples in the map's lookup
// table used by [Map.Lookup] and [Map.Conversion]; zero selects [DefaultGradation].
// The name has no effect on the map other than labelling.
//
// Build fails with [ErrDegenerateSequence] if colors holds fewer than 2 colors and
// with [ErrChannelRange] if any channel lies outside [0, 1]. No Map is returned on error.
func Build(colors Sequence, name string, gradation int) (*Map, error) {
	if gradation == 0 {
		gradation = DefaultGradation
	} else if gradation < 0 {
		return nil, fmt.Errorf("%q: gradation %d: %w", name, gradation, ErrInvalidGradation)
	}
	if err := colors.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}
	m := &Map{
		name:   name,
		colors: colors.Clone(),
	}
	pos := pivots(len(colors))
	for ch := range m.ramps {
		val := make([]float32, len(colors))
		for i, c := range colors {
			val[i] = c.Channels()[ch]
		}
		m.ramps[ch] = ramp{pos: pos, val: val}
	}
	m.table = make([]Color, gradation)
	if gradation == 1 {
		m.table[0] = m.At(0)
		return m, nil
	}
	div := float32(gradation - 1)
	for i := range m.table {
		m.table[i] = m.At(float32(i) / div)
	}
	return m, nil
}

// BuildChannels is like [Build] but accepts loosely typed colors, one row of
// channel values per color. It fails with [ErrInvalidColorFormat] if a row
// does not hold exactly 3 values.
func BuildChannels(rows [][]float32, name string, gradation int) (*Map, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%q: got %d colors: %w", name, len(rows), ErrDegenerateSequence)
	}
	colors := make(Sequence, len(rows))
	for i, row := range rows {
		c, err := ColorFromChannels(row)
		if err != nil {
			return nil, fmt.Errorf("%q: color %d: %w", name, i, err)
		}
		colors[i] = c
	}
	return Build(colors, name, gradation)
}

// Name returns the label the map was built with.
func (m *Map) Name() string { return m.name }

// Len returns the number of colors (pivots) in the map.
func (m *Map) Len() int { return len(m.colors) }

// Gradation returns the number of entries in the map's lookup table.
func (m *Map) Gradation() int { return len(m.table) }

// Colors returns a copy of the sequence the map was built from.
func (m *Map) Colors() Sequence { return m.colors.Clone() }

// Table returns a copy of the map's lookup table.
func (m *Map) Table() []Color { return append([]Color{}, m.table...) }

// At returns the exact interpolated color at t. At pivot i/(n-1) it returns
// the i-th input color exactly. t is clamped to [0, 1]; NaN evaluates as 0.
func (m *Map) At(t float32) Color {
	return Color{
		R: m.ramps[0].at(t),
		G: m.ramps[1].at(t),
		B: m.ramps[2].at(t),
	}
}

// Lookup returns the lookup table entry for t, quantized to the map's gradation.
// t is clamped to [0, 1]; NaN evaluates as 0.
func (m *Map) Lookup(t float32) Color {
	return m.table[m.index(t)]
}

func (m *Map) index(t float32) int {
	n := len(m.table)
	if !(t > 0) {
		return 0
	} else if t >= 1 {
		return n - 1
	}
	return min(int(t*float32(n)), n-1)
}

// Conversion returns a float to color conversion function backed by the map's
// lookup table, suitable for image renderers. NaN and infinite values convert
// to opaque red.
func (m *Map) Conversion() func(float32) color.Color {
	return func(t float32) color.Color {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return badColor
		}
		return m.Lookup(t).RGBA8()
	}
}

// Sample returns n evenly spaced exact samples of the map from 0 to 1.
// n == 1 returns the color at 0.
func (m *Map) Sample(n int) []Color {
	if n <= 0 {
		return nil
	} else if n == 1 {
		return []Color{m.At(0)}
	}
	samples := make([]Color, n)
	div := float32(n - 1)
	for i := range samples {
		samples[i] = m.At(float32(i) / div)
	}
	return samples
}

// Segment is a single anchor of a channel in the segment data form expected by
// plotting libraries: at X the channel approaches Y0 from the left and leaves
// with Y1 to the right. Maps built by this package always have Y0 == Y1.
type Segment struct {
	X, Y0, Y1 float32
}

// SegmentData returns the red, green and blue channel anchors of the map.
func (m *Map) SegmentData() [3][]Segment {
	var data [3][]Segment
	for ch, r := range m.ramps {
		data[ch] = make([]Segment, len(r.pos))
		for i := range r.pos {
			data[ch][i] = Segment{X: r.pos[i], Y0: r.val[i], Y1: r.val[i]}
		}
	}
	return data
}

func (m *Map) String() string {
	return fmt.Sprintf("Map(%q, %d colors, gradation %d)", m.name, len(m.colors), len(m.table))
}
