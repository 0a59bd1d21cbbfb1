package palette_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/gradmap"
	"github.com/soypat/gradmap/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	names := palette.Names()
	assert.Equal(t, []string{"roygbiv1", "roygbiv2", "october", "solid", "bright", "pastel"}, names)
	assert.Equal(t, []string{"base", "complement", "split", "roygbiv1", "roygbiv2", "october", "solid", "bright", "pastel"}, palette.SequenceNames())

	maps := palette.Maps()
	require.Len(t, maps, len(names))
	for i, m := range maps {
		assert.Equal(t, names[i], m.Name())
		seq, ok := palette.Sequence(m.Name())
		require.True(t, ok)
		assert.Equal(t, len(seq), m.Len())
		assert.Equal(t, seq[0], m.At(0), m.Name())
		assert.Equal(t, seq[len(seq)-1], m.At(1), m.Name())
		assert.Equal(t, gradmap.DefaultGradation, m.Gradation())
	}

	_, ok := palette.Map(palette.Base)
	assert.False(t, ok, "triads have no map")
	_, ok = palette.Map("nonexistent")
	assert.False(t, ok)
}

func TestSequenceContents(t *testing.T) {
	pastel, ok := palette.Sequence(palette.Pastel)
	require.True(t, ok)
	require.Len(t, pastel, 9)
	assert.Equal(t, strings.ToLower(palette.PastelPurple), pastel[0].Hex())
	assert.Equal(t, strings.ToLower(palette.PastelRed), pastel[8].Hex())

	rb, ok := palette.Sequence(palette.ROYGBIV2)
	require.True(t, ok)
	want := []string{palette.RoyalPurple, palette.LightBlue, palette.LightGreen, palette.Goldenrod, palette.SplitOrange, palette.CornellRed}
	for i, c := range rb {
		assert.Equal(t, strings.ToLower(want[i]), c.Hex())
	}
}

func TestSequenceIsCopy(t *testing.T) {
	seq, _ := palette.Sequence(palette.Solid)
	seq[0] = gradmap.Color{}
	again, _ := palette.Sequence(palette.Solid)
	assert.Equal(t, "#530066", again[0].Hex())

	names := palette.Names()
	names[0] = "mutated"
	assert.Equal(t, palette.ROYGBIV1, palette.Names()[0])
}

const tomlPalettes = `
[[palette]]
name = "sunset"
colors = ["#2b1055", "darkorange", "#ffd452"]
gradation = 256

[[palette]]
name = "mono"
colors = ["black", "white"]
`

const yamlPalettes = `
palette:
  - name: sunset
    colors: ["#2b1055", "darkorange", "#ffd452"]
    gradation: 256
  - name: mono
    colors: [black, white]
`

func TestDecodeFormatsAgree(t *testing.T) {
	fromTOML, err := palette.Decode(strings.NewReader(tomlPalettes), palette.FormatTOML)
	require.NoError(t, err)
	fromYAML, err := palette.Decode(strings.NewReader(yamlPalettes), palette.FormatYAML)
	require.NoError(t, err)
	require.Len(t, fromTOML, 2)
	require.Len(t, fromYAML, 2)
	for i := range fromTOML {
		a, b := fromTOML[i], fromYAML[i]
		assert.Equal(t, a.Name(), b.Name())
		assert.Equal(t, a.Colors(), b.Colors())
		assert.Equal(t, a.Gradation(), b.Gradation())
	}
	assert.Equal(t, 256, fromTOML[0].Gradation())
	assert.Equal(t, gradmap.DefaultGradation, fromTOML[1].Gradation())
	assert.Equal(t, gradmap.Color{R: 1, G: 1, B: 1}, fromTOML[1].At(1))
}

func TestDecodeErrors(t *testing.T) {
	_, err := palette.Decode(strings.NewReader(`
[[palette]]
name = "one"
colors = ["#ffffff"]
`), palette.FormatTOML)
	assert.ErrorIs(t, err, gradmap.ErrDegenerateSequence)

	_, err = palette.Decode(strings.NewReader(`
[[palette]]
name = "typo"
colours = ["#ffffff", "#000000"]
`), palette.FormatTOML)
	assert.Error(t, err, "unknown fields are rejected")

	_, err = palette.Decode(strings.NewReader(`
palette:
  - colors: [black, white]
`), palette.FormatYAML)
	assert.Error(t, err, "missing name")

	_, err = palette.Decode(strings.NewReader(`
palette:
  - name: a
    colors: [black, white]
  - name: a
    colors: [black, white]
`), palette.FormatYAML)
	assert.Error(t, err, "duplicate name")

	_, err = palette.Decode(strings.NewReader(""), "ini")
	assert.Error(t, err)

	maps, err := palette.Decode(strings.NewReader(""), palette.FormatYAML)
	assert.NoError(t, err)
	assert.Empty(t, maps)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palettes.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlPalettes), 0o644))
	maps, err := palette.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, "sunset", maps[0].Name())

	ymlPath := filepath.Join(dir, "palettes.yml")
	require.NoError(t, os.WriteFile(ymlPath, []byte(yamlPalettes), 0o644))
	maps, err = palette.LoadFile(ymlPath)
	require.NoError(t, err)
	assert.Len(t, maps, 2)

	_, err = palette.LoadFile(filepath.Join(dir, "palettes.json"))
	assert.Error(t, err)
	_, err = palette.LoadFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
