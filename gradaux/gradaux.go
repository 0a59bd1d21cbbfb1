// Package gradaux provides auxiliary functions to preview color maps as PNG
// files or in an OpenGL window.
package gradaux

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soypat/gradmap"
	"github.com/soypat/gradmap/render"
)

// Preview file names written to [PreviewConfig.Dir].
const (
	StripsFile        = "strips.png"
	CurvesFile        = "curves.png"
	contourFileSuffix = "_contour.png"
)

// PreviewConfig configures [Preview].
type PreviewConfig struct {
	// Dir is the output directory, created if missing. Empty means the working directory.
	Dir string
	// Height of the strips and contour plots in pixels. Zero selects defaults.
	Height int
	// Levels is the number of filled contour bands. Zero selects [render.DefaultLevels].
	Levels int
	// Curves is the number of sine curves drawn. Zero draws one per sequence color.
	Curves int
	Silent bool
	// Logger receives one record per written file. Nil uses [slog.Default].
	Logger *slog.Logger
}

// UIConfig configures [UI].
type UIConfig struct {
	Width, Height int
	// Context cancels the window's render loop when done. May be nil.
	Context context.Context
}

// ContourFileName returns the name of the contour plot file Preview writes for a map.
func ContourFileName(mapName string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == os.PathSeparator || r == ' ' {
			return '_'
		}
		return r
	}, mapName)
	return safe + contourFileSuffix
}

// Preview renders maps to PNG files in cfg.Dir: all maps side by side as strips in [StripsFile],
// one filled contour plot per map (see [ContourFileName]) and, if seq is not empty, sine curves
// drawn with the colors of seq in [CurvesFile].
func Preview(maps []*gradmap.Map, seq gradmap.Sequence, cfg PreviewConfig) error {
	if len(maps) == 0 && len(seq) == 0 {
		return errors.New("nothing to preview")
	} else if cfg.Height < 0 || cfg.Levels < 0 || cfg.Curves < 0 {
		return errors.New("negative preview dimension")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	logWrote := func(filename string, took time.Duration) {
		if !cfg.Silent {
			log.Info("wrote preview", slog.String("file", filename), slog.Duration("took", took))
		}
	}
	if cfg.Dir != "" {
		err := os.MkdirAll(cfg.Dir, 0o755)
		if err != nil {
			return err
		}
	}
	lbl, err := render.NewLabeler(0)
	if err != nil {
		return fmt.Errorf("loading label font: %w", err)
	}
	if len(maps) > 0 {
		watch := stopwatch()
		stripsCfg := render.DefaultStripsConfig()
		stripsCfg.Labeler = lbl
		if cfg.Height > 0 {
			stripsCfg.Height = cfg.Height
		}
		img, err := render.Strips(maps, stripsCfg)
		if err != nil {
			return err
		}
		filename := filepath.Join(cfg.Dir, StripsFile)
		err = RenderPNGFile(filename, img)
		if err != nil {
			return err
		}
		logWrote(filename, watch())
	}

	contourCfg := render.DefaultContourConfig()
	contourCfg.Labeler = lbl
	if cfg.Height > 0 {
		contourCfg.Width, contourCfg.Height = cfg.Height, cfg.Height
	}
	if cfg.Levels > 0 {
		contourCfg.Levels = cfg.Levels
	}
	for _, m := range maps {
		watch := stopwatch()
		img, err := render.ContourFigure(render.SinField{}, m, contourCfg)
		if err != nil {
			return fmt.Errorf("%s contour: %w", m.Name(), err)
		}
		filename := filepath.Join(cfg.Dir, ContourFileName(m.Name()))
		err = RenderPNGFile(filename, img)
		if err != nil {
			return err
		}
		logWrote(filename, watch())
	}

	if len(seq) > 0 {
		watch := stopwatch()
		h := contourCfg.Height
		img := image.NewRGBA(image.Rect(0, 0, 2*h, h))
		err = render.SineCurves(img, seq, render.CurvesConfig{Curves: cfg.Curves, Margin: 12})
		if err != nil {
			return err
		}
		filename := filepath.Join(cfg.Dir, CurvesFile)
		err = RenderPNGFile(filename, img)
		if err != nil {
			return err
		}
		logWrote(filename, watch())
	}
	return nil
}

// RenderPNGFile encodes img as PNG and saves it to a file with said filename.
func RenderPNGFile(filename string, img image.Image) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	err = EncodePNG(fp, img)
	if err != nil {
		return err
	}
	return fp.Sync()
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// UI opens a window that draws maps side by side as strips with OpenGL.
// It blocks until the window is closed or cfg.Context is done and requires
// to be called from the main OS thread. UI is only available in cgo builds.
func UI(maps []*gradmap.Map, cfg UIConfig) error {
	if len(maps) == 0 {
		return errors.New("no color maps to display")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}
	return ui(maps, cfg)
}

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
