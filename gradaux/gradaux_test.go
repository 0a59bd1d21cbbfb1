package gradaux_test

import (
	"bytes"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/gradmap"
	"github.com/soypat/gradmap/gradaux"
	"github.com/soypat/gradmap/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	maps := palette.Maps()[:2]
	seq, _ := palette.Sequence(palette.October)
	var logs bytes.Buffer
	err := gradaux.Preview(maps, seq, gradaux.PreviewConfig{
		Dir:    dir,
		Height: 64,
		Levels: 8,
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})
	require.NoError(t, err)

	files := []string{gradaux.StripsFile, gradaux.CurvesFile}
	for _, m := range maps {
		files = append(files, gradaux.ContourFileName(m.Name()))
	}
	for _, name := range files {
		img := decodePNG(t, filepath.Join(dir, name))
		assert.False(t, img.Bounds().Empty(), name)
		assert.Contains(t, logs.String(), name)
	}
	assert.Equal(t, len(files), strings.Count(logs.String(), "wrote preview"))

	curves := decodePNG(t, filepath.Join(dir, gradaux.CurvesFile))
	assert.Equal(t, image.Rect(0, 0, 128, 64), curves.Bounds())
}

func TestPreviewSilent(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	m, err := gradmap.Build(gradmap.Sequence{{R: 1}, {B: 1}}, "red/blue", 0)
	require.NoError(t, err)
	err = gradaux.Preview([]*gradmap.Map{m}, nil, gradaux.PreviewConfig{
		Dir:    dir,
		Height: 32,
		Silent: true,
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})
	require.NoError(t, err)
	assert.Empty(t, logs.String())
	_, err = os.Stat(filepath.Join(dir, "red_blue_contour.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, gradaux.CurvesFile))
	assert.True(t, os.IsNotExist(err), "no sequence, no curves")
}

func TestPreviewErrors(t *testing.T) {
	assert.Error(t, gradaux.Preview(nil, nil, gradaux.PreviewConfig{}))
	assert.Error(t, gradaux.Preview(palette.Maps(), nil, gradaux.PreviewConfig{Levels: -1}))
}

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	m, _ := palette.Map(palette.Solid)
	img.Set(0, 0, m.At(0))
	var buf bytes.Buffer
	require.NoError(t, gradaux.EncodePNG(&buf, img))
	got, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	r, g, b, _ := got.At(0, 0).RGBA()
	wr, wg, wb, _ := m.At(0).RGBA()
	assert.Equal(t, [3]uint32{wr, wg, wb}, [3]uint32{r, g, b})
}

func TestUIRequiresMaps(t *testing.T) {
	assert.Error(t, gradaux.UI(nil, gradaux.UIConfig{}))
}

func decodePNG(t *testing.T, filename string) image.Image {
	t.Helper()
	fp, err := os.Open(filename)
	require.NoError(t, err, filename)
	defer fp.Close()
	img, err := png.Decode(fp)
	require.NoError(t, err, filename)
	return img
}
