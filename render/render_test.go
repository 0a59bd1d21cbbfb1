package render_test

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	math "github.com/chewxy/math32"
	"github.com/muesli/termenv"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/gradmap"
	"github.com/soypat/gradmap/palette"
	"github.com/soypat/gradmap/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMap(t *testing.T, name string) *gradmap.Map {
	t.Helper()
	m, ok := palette.Map(name)
	require.True(t, ok, name)
	return m
}

func TestSinField(t *testing.T) {
	f := render.SinField{}
	bb := f.Bounds()
	assert.Equal(t, ms2.Vec{}, bb.Min)
	assert.InDelta(t, 6*math.Pi, bb.Max.X, 1e-5)
	assert.InDelta(t, 6*math.Pi, bb.Max.Y, 1e-5)

	pos := []ms2.Vec{{X: math.Pi / 2, Y: math.Pi / 2}, {X: math.Pi / 2, Y: 3 * math.Pi / 2}, {}}
	dst := make([]float32, len(pos))
	require.NoError(t, f.Evaluate(pos, dst, nil))
	assert.InDelta(t, 1, dst[0], 1e-6)
	assert.InDelta(t, -1, dst[1], 1e-6)
	assert.Equal(t, float32(0), dst[2])

	assert.Error(t, f.Evaluate(pos, dst[:1], nil))
	assert.Error(t, f.Evaluate(nil, nil, nil))
	assert.InDelta(t, 2*math.Pi, render.SinField{Periods: 1}.Bounds().Max.X, 1e-6)
}

func distinctColors(img *image.RGBA) map[color.RGBA]int {
	colors := make(map[color.RGBA]int)
	bb := img.Bounds()
	for y := bb.Min.Y; y < bb.Max.Y; y++ {
		for x := bb.Min.X; x < bb.Max.X; x++ {
			colors[img.RGBAAt(x, y)]++
		}
	}
	return colors
}

func TestImageRendererLevels(t *testing.T) {
	m := mustMap(t, palette.Bright)
	for _, levels := range []int{1, 5, render.DefaultLevels} {
		ir, err := render.NewImageRenderer(128, levels)
		require.NoError(t, err)
		img := image.NewRGBA(image.Rect(0, 0, 96, 96))
		require.NoError(t, ir.Render(render.SinField{}, m, img, nil))
		n := len(distinctColors(img))
		assert.LessOrEqual(t, n, levels, "levels=%d", levels)
		assert.Greater(t, n, 0)
		lo, hi := ir.Range()
		assert.Less(t, lo, float32(-0.9))
		assert.Greater(t, hi, float32(0.9))
	}
}

func TestImageRendererContinuous(t *testing.T) {
	m := mustMap(t, palette.Pastel)
	ir, err := render.NewImageRenderer(128, 0)
	require.NoError(t, err)
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	require.NoError(t, ir.Render(render.SinField{}, m, img, nil))
	assert.Greater(t, len(distinctColors(img)), render.DefaultLevels)
}

func TestImageRendererErrors(t *testing.T) {
	_, err := render.NewImageRenderer(8, 0)
	assert.Error(t, err)
	_, err = render.NewImageRenderer(128, -1)
	assert.Error(t, err)

	ir, err := render.NewImageRenderer(65, 0)
	require.NoError(t, err)
	m := mustMap(t, palette.Solid)
	err = ir.Render(render.SinField{}, m, image.NewRGBA(image.Rect(0, 0, 10, 100)), nil)
	assert.Error(t, err, "column taller than buffer")
	err = ir.Render(render.SinField{}, nil, image.NewRGBA(image.Rect(0, 0, 10, 10)), nil)
	assert.Error(t, err)
}

func TestStripEndpoints(t *testing.T) {
	for _, m := range palette.Maps() {
		img := image.NewRGBA(image.Rect(0, 0, 4, 50))
		render.Strip(img, img.Bounds(), m)
		colors := m.Colors()
		assert.Equal(t, colors[0].RGBA8(), img.RGBAAt(0, 49), m.Name())
		assert.Equal(t, colors[len(colors)-1].RGBA8(), img.RGBAAt(3, 0), m.Name())
	}
}

func TestColorbar(t *testing.T) {
	m := mustMap(t, palette.October)
	img := image.NewRGBA(image.Rect(0, 0, 20, 100))
	render.Colorbar(img, img.Bounds(), m, 4)
	black := color.RGBA{A: 255}
	assert.Equal(t, black, img.RGBAAt(0, 0))
	assert.Equal(t, black, img.RGBAAt(19, 99))
	inner := img.SubImage(image.Rect(1, 1, 19, 99)).(*image.RGBA)
	assert.LessOrEqual(t, len(distinctColors(inner)), 4)
}

func TestStrips(t *testing.T) {
	maps := palette.Maps()
	cfg := render.DefaultStripsConfig()
	img, err := render.Strips(maps, cfg)
	require.NoError(t, err)
	bb := img.Bounds()
	assert.Equal(t, cfg.Gap+len(maps)*(cfg.StripWidth+cfg.Gap), bb.Dx())
	assert.Equal(t, 2*cfg.Gap+cfg.Height, bb.Dy())
	for i, m := range maps {
		x := cfg.Gap + i*(cfg.StripWidth+cfg.Gap) + cfg.StripWidth/2
		colors := m.Colors()
		assert.Equal(t, colors[0].RGBA8(), img.RGBAAt(x, cfg.Gap+cfg.Height-1), m.Name())
		assert.Equal(t, colors[len(colors)-1].RGBA8(), img.RGBAAt(x, cfg.Gap), m.Name())
	}

	cfg.Labeler, err = render.NewLabeler(0)
	require.NoError(t, err)
	labelled, err := render.Strips(maps, cfg)
	require.NoError(t, err)
	assert.Greater(t, labelled.Bounds().Dy(), bb.Dy())

	_, err = render.Strips(nil, cfg)
	assert.Error(t, err)
	cfg.Height = 0
	_, err = render.Strips(maps, cfg)
	assert.Error(t, err)
}

func TestLabeler(t *testing.T) {
	lbl, err := render.NewLabeler(16)
	require.NoError(t, err)
	assert.Greater(t, lbl.Height(), 0)
	assert.Greater(t, lbl.Width("roygbiv1"), lbl.Width("r"))
	img := image.NewRGBA(image.Rect(0, 0, 100, 30))
	lbl.Draw(img, 2, 20, "label", color.Black)
	assert.Greater(t, len(distinctColors(img)), 1, "text was drawn")
}

func TestSineCurves(t *testing.T) {
	seq, ok := palette.Sequence(palette.Base)
	require.True(t, ok)
	img := image.NewRGBA(image.Rect(0, 0, 300, 200))
	require.NoError(t, render.SineCurves(img, seq, render.CurvesConfig{Margin: 10, LineWidth: 4}))
	colors := distinctColors(img)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(0, 0), "background")
	for _, c := range seq {
		assert.Contains(t, colors, c.RGBA8(), c.Hex())
	}

	assert.Error(t, render.SineCurves(img, nil, render.CurvesConfig{}))
	assert.Error(t, render.SineCurves(img, seq, render.CurvesConfig{Margin: 150}))
	assert.Error(t, render.SineCurves(img, seq, render.CurvesConfig{Curves: -1}))
}

func TestContourFigure(t *testing.T) {
	m := mustMap(t, palette.ROYGBIV1)
	cfg := render.DefaultContourConfig()
	cfg.Width, cfg.Height = 128, 96
	img, err := render.ContourFigure(render.SinField{}, m, cfg)
	require.NoError(t, err)
	bb := img.Bounds()
	assert.Equal(t, 3*cfg.Gap+cfg.Width+cfg.ColorbarWidth, bb.Dx())
	assert.Equal(t, 2*cfg.Gap+cfg.Height, bb.Dy())
	plot := img.SubImage(image.Rect(cfg.Gap, cfg.Gap, cfg.Gap+cfg.Width, cfg.Gap+cfg.Height)).(*image.RGBA)
	assert.LessOrEqual(t, len(distinctColors(plot)), cfg.Levels)

	cfg.Labeler, err = render.NewLabeler(0)
	require.NoError(t, err)
	_, err = render.ContourFigure(render.SinField{}, m, cfg)
	require.NoError(t, err)

	cfg.Width = 0
	_, err = render.ContourFigure(render.SinField{}, m, cfg)
	assert.Error(t, err)
}

func TestWriteANSI(t *testing.T) {
	m, err := gradmap.Build(gradmap.Sequence{{R: 1}, {B: 1}}, "redblue", 0)
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := render.WriteANSI(&buf, m, render.ANSIConfig{Width: 8, Profile: termenv.TrueColor})
	require.NoError(t, err)
	out := buf.String()
	assert.Equal(t, len(out), n)
	assert.Equal(t, 8, strings.Count(out, "48;2;"))
	assert.True(t, strings.HasSuffix(out, " redblue\n"))

	buf.Reset()
	_, err = render.WriteANSI(&buf, m, render.ANSIConfig{Profile: termenv.Ascii})
	require.NoError(t, err)
	assert.Equal(t, "redblue: #ff0000 #0000ff\n", buf.String())

	buf.Reset()
	seq, _ := palette.Sequence(palette.Base)
	_, err = render.WriteSequenceANSI(&buf, palette.Base, seq, render.ANSIConfig{Profile: termenv.ANSI256})
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), "48;5;"))

	_, err = render.WriteANSI(&buf, nil, render.ANSIConfig{})
	assert.Error(t, err)
}
