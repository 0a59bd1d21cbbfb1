package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	math "github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/gradmap"
)

// DefaultLevels is the number of filled contour bands used by figures when none is configured.
const DefaultLevels = 25

type setImage = interface {
	image.Image
	Set(x, y int, c color.Color)
}

// ImageRenderer converts 2D fields to images through a color map.
// Field values are normalized to [0, 1] by the range observed over the image.
type ImageRenderer struct {
	levels   int
	pos      []ms2.Vec
	vals     []float32
	min, max float32
}

// NewImageRenderer instances a new [ImageRenderer]. evalBufferSize is the
// number of positions evaluated per [Field.Evaluate] call and must hold at least an image column.
// levels > 0 quantizes values into that many filled contour bands, levels == 0 renders a continuous image.
func NewImageRenderer(evalBufferSize, levels int) (*ImageRenderer, error) {
	if evalBufferSize <= 64 {
		return nil, errors.New("too small evaluation buffer size")
	} else if levels < 0 {
		return nil, errors.New("negative contour levels")
	}
	ir := &ImageRenderer{
		levels: levels,
		pos:    make([]ms2.Vec, evalBufferSize),
	}
	return ir, nil
}

// Range returns the minimum and maximum finite field values observed during the last Render call.
func (ir *ImageRenderer) Range() (min, max float32) { return ir.min, ir.max }

// Render evaluates the field over img's pixels and colors them with m. The bottom row of
// the image corresponds to the minimum Y of the field's bounds. It uses userData
// as an argument to all [Field.Evaluate] calls.
func (ir *ImageRenderer) Render(f Field, m *gradmap.Map, img setImage, userData any) error {
	if m == nil {
		return errors.New("nil color map")
	}
	imgBB := img.Bounds()
	dxi := imgBB.Dx()
	dyi := imgBB.Dy()
	if dxi == 0 || dyi == 0 {
		return errors.New("empty image")
	} else if len(ir.pos) < dyi {
		return fmt.Errorf("require evaluation buffer (%d) to be at least of length of image columns (%d)", len(ir.pos), dyi)
	}
	if cap(ir.vals) < dxi*dyi {
		ir.vals = make([]float32, dxi*dyi)
	}
	ir.vals = ir.vals[:dxi*dyi]
	bb := f.Bounds()
	sz := bb.Size()
	dx := sz.X / float32(dxi)
	dy := sz.Y / float32(dyi)
	bb.Min = ms2.Add(bb.Min, ms2.Vec{X: dx / 2, Y: dy / 2}) // Offset to center pixels.
	for i := 0; i < dxi; i++ {
		x := float32(i)*dx + bb.Min.X
		err := ir.evalColumn(f, x, bb.Min.Y, dy, ir.vals[i*dyi:(i+1)*dyi], userData)
		if err != nil {
			return err
		}
	}
	ir.observeRange()
	conv := m.Conversion()
	span := ir.max - ir.min
	for i := 0; i < dxi; i++ {
		col := ir.vals[i*dyi : (i+1)*dyi]
		for j, v := range col {
			t := v - ir.min
			if span > 0 {
				t /= span
			}
			if ir.levels > 0 && !math.IsNaN(t) && !math.IsInf(t, 0) {
				t = quantize(t, ir.levels)
			}
			// Image rows grow downwards, field Y grows upwards.
			img.Set(i+imgBB.Min.X, imgBB.Max.Y-1-j, conv(t))
		}
	}
	return nil
}

func (ir *ImageRenderer) evalColumn(f Field, x, ymin, dy float32, dst []float32, userData any) error {
	pos := ir.pos[:len(dst)]
	for j := range pos {
		pos[j] = ms2.Vec{X: x, Y: float32(j)*dy + ymin}
	}
	return f.Evaluate(pos, dst, userData)
}

func (ir *ImageRenderer) observeRange() {
	ir.min, ir.max = math.Inf(1), math.Inf(-1)
	for _, v := range ir.vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		ir.min = math.Min(ir.min, v)
		ir.max = math.Max(ir.max, v)
	}
	if ir.min > ir.max {
		ir.min, ir.max = 0, 0 // No finite values.
	}
}

// quantize maps t in [0, 1] to the center of its band out of levels bands.
func quantize(t float32, levels int) float32 {
	band := min(int(t*float32(levels)), levels-1)
	return (float32(max(band, 0)) + 0.5) / float32(levels)
}
