package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/soypat/gradmap"
)

// Strip fills r of dst with m. The bottom row of r is the color at t=0 and the top row the color at t=1.
func Strip(dst draw.Image, r image.Rectangle, m *gradmap.Map) {
	fillStrip(dst, r, m, 0)
}

// Colorbar draws a black framed strip of m inside r. levels > 0 quantizes the
// bar into the same bands an [ImageRenderer] with those levels produces.
func Colorbar(dst draw.Image, r image.Rectangle, m *gradmap.Map, levels int) {
	draw.Draw(dst, r, image.Black, image.Point{}, draw.Src)
	fillStrip(dst, r.Inset(1), m, levels)
}

func fillStrip(dst draw.Image, r image.Rectangle, m *gradmap.Map, levels int) {
	r = r.Intersect(dst.Bounds())
	h := r.Dy()
	if h <= 0 {
		return
	}
	div := float32(max(h-1, 1))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := float32(r.Max.Y-1-y) / div
		var c color.RGBA
		if levels > 0 {
			c = m.Lookup(quantize(t, levels)).RGBA8()
		} else {
			c = m.At(t).RGBA8()
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

// StripsConfig configures [Strips].
type StripsConfig struct {
	// StripWidth is the minimum width of each strip in pixels. Strips widen to fit their label.
	StripWidth int
	// Height is the height of each strip in pixels.
	Height int
	// Gap is the spacing between strips and around the figure.
	Gap int
	// Labeler draws map names below the strips. If nil no labels are drawn.
	Labeler *Labeler
}

// DefaultStripsConfig returns the configuration used by the preview command.
func DefaultStripsConfig() StripsConfig {
	return StripsConfig{
		StripWidth: 48,
		Height:     256,
		Gap:        12,
	}
}

// Strips draws each map as a vertical strip side by side, left to right in
// the order given, each with its name below when cfg has a Labeler.
func Strips(maps []*gradmap.Map, cfg StripsConfig) (*image.RGBA, error) {
	if len(maps) == 0 {
		return nil, errors.New("no color maps")
	} else if cfg.StripWidth <= 0 || cfg.Height <= 0 || cfg.Gap < 0 {
		return nil, errors.New("invalid strip dimensions")
	}
	widths := make([]int, len(maps))
	labelHeight := 0
	if cfg.Labeler != nil {
		labelHeight = cfg.Labeler.Height() + cfg.Gap
	}
	totalWidth := cfg.Gap
	for i, m := range maps {
		if m == nil {
			return nil, errors.New("nil color map")
		}
		widths[i] = cfg.StripWidth
		if cfg.Labeler != nil {
			widths[i] = max(widths[i], cfg.Labeler.Width(m.Name()))
		}
		totalWidth += widths[i] + cfg.Gap
	}
	img := image.NewRGBA(image.Rect(0, 0, totalWidth, 2*cfg.Gap+cfg.Height+labelHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	x := cfg.Gap
	for i, m := range maps {
		r := image.Rect(x, cfg.Gap, x+widths[i], cfg.Gap+cfg.Height)
		Strip(img, r, m)
		if cfg.Labeler != nil {
			cfg.Labeler.DrawCentered(img, x+widths[i]/2, r.Max.Y+cfg.Gap, m.Name(), color.Black)
		}
		x += widths[i] + cfg.Gap
	}
	return img, nil
}
