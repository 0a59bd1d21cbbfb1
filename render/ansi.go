package render

import (
	"errors"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/soypat/gradmap"
)

// ANSIConfig configures terminal swatches.
type ANSIConfig struct {
	// Width is the number of character cells in a map swatch. Zero selects 64.
	Width int
	// Profile is the terminal color profile. The zero value is true color.
	// With [termenv.Ascii] colors are written as hex codes.
	Profile termenv.Profile
}

// WriteANSI writes a single line swatch of m sampled across cfg.Width cells followed by the map name.
func WriteANSI(w io.Writer, m *gradmap.Map, cfg ANSIConfig) (int, error) {
	if m == nil {
		return 0, errors.New("nil color map")
	}
	width := cfg.Width
	if width == 0 {
		width = 64
	} else if width < 0 {
		return 0, errors.New("negative swatch width")
	}
	if cfg.Profile == termenv.Ascii {
		return writeHexLine(w, m.Name(), m.Colors())
	}
	var sb strings.Builder
	for _, c := range m.Sample(width) {
		sb.WriteString(swatch(cfg.Profile, c, " "))
	}
	sb.WriteByte(' ')
	sb.WriteString(m.Name())
	sb.WriteByte('\n')
	return io.WriteString(w, sb.String())
}

// WriteSequenceANSI writes one labelled cell per color of seq on a single line.
func WriteSequenceANSI(w io.Writer, name string, seq gradmap.Sequence, cfg ANSIConfig) (int, error) {
	if cfg.Profile == termenv.Ascii {
		return writeHexLine(w, name, seq)
	}
	var sb strings.Builder
	for _, c := range seq {
		sb.WriteString(swatch(cfg.Profile, c, "   "))
	}
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteByte('\n')
	return io.WriteString(w, sb.String())
}

func swatch(p termenv.Profile, c gradmap.Color, cell string) string {
	return p.String(cell).Background(p.FromColor(c.RGBA8())).String()
}

func writeHexLine(w io.Writer, name string, seq gradmap.Sequence) (int, error) {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte(':')
	for _, c := range seq {
		sb.WriteByte(' ')
		sb.WriteString(c.Hex())
	}
	sb.WriteByte('\n')
	return io.WriteString(w, sb.String())
}
