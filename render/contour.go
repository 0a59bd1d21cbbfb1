package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/soypat/gradmap"
)

// ContourConfig configures [ContourFigure].
type ContourConfig struct {
	// Width and Height of the contour plot area in pixels.
	Width, Height int
	// Levels is the number of filled contour bands. Zero selects [DefaultLevels].
	Levels int
	// ColorbarWidth is the width of the colorbar right of the plot.
	ColorbarWidth int
	// Gap is the spacing between figure elements.
	Gap int
	// Labeler draws the title and colorbar range. If nil no text is drawn.
	Labeler *Labeler
}

// DefaultContourConfig returns the configuration used by the preview command.
func DefaultContourConfig() ContourConfig {
	return ContourConfig{
		Width:         384,
		Height:        384,
		Levels:        DefaultLevels,
		ColorbarWidth: 24,
		Gap:           12,
	}
}

// ContourFigure renders a filled contour plot of f colored with m, with a colorbar to its right.
func ContourFigure(f Field, m *gradmap.Map, cfg ContourConfig) (*image.RGBA, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.ColorbarWidth <= 2 || cfg.Gap < 0 {
		return nil, errors.New("invalid contour figure dimensions")
	}
	levels := cfg.Levels
	if levels == 0 {
		levels = DefaultLevels
	}
	ir, err := NewImageRenderer(max(cfg.Height, 65), levels)
	if err != nil {
		return nil, err
	}
	var titleHeight, rangeWidth int
	if cfg.Labeler != nil {
		titleHeight = cfg.Labeler.Height() + cfg.Gap
	}
	plot := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	err = ir.Render(f, m, plot, nil)
	if err != nil {
		return nil, err
	}
	lo, hi := ir.Range()
	loLabel, hiLabel := formatValue(lo), formatValue(hi)
	if cfg.Labeler != nil {
		rangeWidth = max(cfg.Labeler.Width(loLabel), cfg.Labeler.Width(hiLabel)) + cfg.Gap
	}
	w := cfg.Gap + cfg.Width + cfg.Gap + cfg.ColorbarWidth + cfg.Gap + rangeWidth
	h := cfg.Gap + titleHeight + cfg.Height + cfg.Gap
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	top := cfg.Gap + titleHeight
	plotRect := image.Rect(cfg.Gap, top, cfg.Gap+cfg.Width, top+cfg.Height)
	draw.Draw(img, plotRect, plot, image.Point{}, draw.Src)
	barX := plotRect.Max.X + cfg.Gap
	barRect := image.Rect(barX, top, barX+cfg.ColorbarWidth, top+cfg.Height)
	Colorbar(img, barRect, m, levels)
	if cfg.Labeler != nil {
		lbl := cfg.Labeler
		lbl.DrawCentered(img, plotRect.Min.X+cfg.Width/2, cfg.Gap, m.Name(), color.Black)
		lbl.Draw(img, barRect.Max.X+cfg.Gap/2, barRect.Min.Y+lbl.Ascent(), hiLabel, color.Black)
		lbl.Draw(img, barRect.Max.X+cfg.Gap/2, barRect.Max.Y, loLabel, color.Black)
	}
	return img, nil
}

func formatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 3, 32)
}
