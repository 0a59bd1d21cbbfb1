package render

import (
	"errors"
	"image"
	"image/draw"

	math "github.com/chewxy/math32"
	"github.com/golang/freetype/raster"
	"github.com/soypat/gradmap"
	"golang.org/x/image/math/fixed"
)

// CurvesConfig configures [SineCurves].
type CurvesConfig struct {
	// Curves is the number of curves drawn. Zero draws one curve per sequence color.
	Curves int
	// LineWidth is the stroke width in pixels. Zero selects 2.
	LineWidth float32
	// Margin is the blank space in pixels around the plot area.
	Margin int
}

// SineCurves strokes the curves y = sin(x/k) for k = 1..cfg.Curves over x in [0, 6π]
// onto dst, which is cleared to white first. Curve k is colored with seq.Cycle(k-1).
func SineCurves(dst *image.RGBA, seq gradmap.Sequence, cfg CurvesConfig) error {
	if len(seq) == 0 {
		return errors.New("empty color sequence")
	}
	ncurves := cfg.Curves
	if ncurves == 0 {
		ncurves = len(seq)
	} else if ncurves < 0 {
		return errors.New("negative curve count")
	}
	lw := cfg.LineWidth
	if lw == 0 {
		lw = 2
	} else if lw < 0 {
		return errors.New("negative line width")
	}
	bb := dst.Bounds()
	plot := bb.Inset(cfg.Margin)
	if cfg.Margin < 0 || plot.Dx() < 2 || plot.Dy() < 2 {
		return errors.New("image too small for margin")
	}
	draw.Draw(dst, bb, image.White, image.Point{}, draw.Src)

	const xmax = 6 * math.Pi
	sx := xmax / float32(plot.Dx()-1)
	halfY := float32(plot.Dy()-1) / 2
	midY := float32(plot.Min.Y) + halfY
	r := raster.NewRasterizer(bb.Max.X, bb.Max.Y)
	r.UseNonZeroWinding = true
	painter := raster.NewRGBAPainter(dst)
	var path raster.Path
	for k := 1; k <= ncurves; k++ {
		path.Clear()
		for i := 0; i < plot.Dx(); i++ {
			x := float32(i) * sx
			y := math.Sin(x / float32(k))
			p := fixp(float32(plot.Min.X+i), midY-y*halfY)
			if i == 0 {
				path.Start(p)
			} else {
				path.Add1(p)
			}
		}
		r.Clear()
		r.AddStroke(path, fix(lw), raster.RoundCapper, raster.RoundJoiner)
		painter.SetColor(seq.Cycle(k - 1).RGBA8())
		r.Rasterize(painter)
	}
	return nil
}

func fixp(x, y float32) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(x), Y: fix(y)}
}

func fix(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
