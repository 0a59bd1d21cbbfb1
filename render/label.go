package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// DefaultLabelSize is the font size in points used for figure labels.
const DefaultLabelSize = 13

// Labeler draws text labels using the Go Regular TrueType font.
type Labeler struct {
	face font.Face
}

// NewLabeler parses the embedded Go Regular font and returns a Labeler drawing
// text of the given size in points. A non-positive size selects [DefaultLabelSize].
func NewLabeler(size float64) (*Labeler, error) {
	if size <= 0 {
		size = DefaultLabelSize
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &Labeler{face: face}, nil
}

// Height returns the recommended line height of labels in pixels.
func (l *Labeler) Height() int {
	return l.face.Metrics().Height.Ceil()
}

// Ascent returns the distance in pixels from the baseline to the top of the tallest glyphs.
func (l *Labeler) Ascent() int {
	return l.face.Metrics().Ascent.Ceil()
}

// Width returns the advance width of s in pixels.
func (l *Labeler) Width(s string) int {
	return font.MeasureString(l.face, s).Ceil()
}

// Draw draws s on dst with its baseline starting at (x, y).
func (l *Labeler) Draw(dst draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: l.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawCentered draws s horizontally centered on cx with its top at y.
func (l *Labeler) DrawCentered(dst draw.Image, cx, y int, s string, c color.Color) {
	l.Draw(dst, cx-l.Width(s)/2, y+l.Ascent(), s, c)
}
