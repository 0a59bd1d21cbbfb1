package gradmap

import (
	"fmt"
	"image/color"
	"strings"

	math "github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/glgl/math/ms3"
	"golang.org/x/image/colornames"
)

// Color is an RGB color with channels in the range [0, 1].
// The zero value is black.
type Color struct {
	R, G, B float32
}

var _ color.Color = Color{} // Interface implementation compile-time check.

// NewColor returns the color with the given channel values. It fails with
// [ErrChannelRange] if any channel is NaN or lies outside [0, 1].
func NewColor(r, g, b float32) (Color, error) {
	c := Color{R: r, G: g, B: b}
	if err := c.validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

// ColorFromChannels converts a loosely typed channel list into a [Color].
// It fails with [ErrInvalidColorFormat] if channels does not hold exactly 3 values.
func ColorFromChannels(channels []float32) (Color, error) {
	if len(channels) != 3 {
		return Color{}, fmt.Errorf("got %d channel values, want 3: %w", len(channels), ErrInvalidColorFormat)
	}
	return NewColor(channels[0], channels[1], channels[2])
}

// FromColor converts any color to a [Color], dropping alpha.
func FromColor(c color.Color) Color {
	col, _ := colorful.MakeColor(c)
	return fromColorful(col)
}

// ParseHex parses an HTML hex color of the form "#rrggbb" or "#rgb".
func ParseHex(hex string) (Color, error) {
	if (len(hex) != 4 && len(hex) != 7) || hex[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, err
	}
	return fromColorful(col), nil
}

// ParseColor parses a hex color (see [ParseHex]) or an SVG 1.1 color name such as "darkblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	return FromColor(named), nil
}

func fromColorful(col colorful.Color) Color {
	return Color{
		R: ms1.Clamp(float32(col.R), 0, 1),
		G: ms1.Clamp(float32(col.G), 0, 1),
		B: ms1.Clamp(float32(col.B), 0, 1),
	}
}

// RGBA implements [color.Color]. The color is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.RGBA8().RGBA()
}

// RGBA8 returns the 8 bit per channel opaque representation of c.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: to8bit(c.R),
		G: to8bit(c.G),
		B: to8bit(c.B),
		A: 255,
	}
}

// Hex returns the HTML hex representation of c, as in #ff0080.
func (c Color) Hex() string {
	return c.toColorful().Hex()
}

// Channels returns the red, green and blue channels in that order.
func (c Color) Channels() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Vec returns the channels as a vector with X=R, Y=G, Z=B.
func (c Color) Vec() ms3.Vec {
	return ms3.Vec{X: c.R, Y: c.G, Z: c.B}
}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func (c Color) validate() error {
	for i, v := range c.Channels() {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%s channel %g: %w", channelNames[i], v, ErrChannelRange)
		}
	}
	return nil
}

var channelNames = [3]string{"red", "green", "blue"}

func to8bit(v float32) uint8 {
	// Add 0.5 for rounding.
	return uint8(ms1.Clamp(v, 0, 1)*255 + 0.5)
}

// Sequence is an ordered list of colors. Order defines interpolation order
// when used to build a [Map].
type Sequence []Color

// ParseSequence parses each string with [ParseColor].
func ParseSequence(colors ...string) (Sequence, error) {
	seq := make(Sequence, len(colors))
	for i, s := range colors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		seq[i] = c
	}
	return seq, nil
}

// Clone returns a copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	return append(Sequence{}, s...)
}

// Cycle returns the i-th color of an endless repetition of s,
// as used when assigning colors to successive line plots. Negative i wraps backwards.
func (s Sequence) Cycle(i int) Color {
	n := len(s)
	i %= n
	if i < 0 {
		i += n
	}
	return s[i]
}

// Validate checks s is usable for building a [Map].
func (s Sequence) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("got %d colors: %w", len(s), ErrDegenerateSequence)
	}
	for i, c := range s {
		if err := c.validate(); err != nil {
			return fmt.Errorf("color %d: %w", i, err)
		}
	}
	return nil
}
