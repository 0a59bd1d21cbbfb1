// Command gradmap previews color maps as PNG figures, terminal swatches,
// GLSL functions or in an OpenGL window.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/muesli/termenv"
	"github.com/vimeo/dials"
	"github.com/vimeo/dials/sources/env"
	"github.com/vimeo/dials/sources/flag"

	"github.com/soypat/gradmap"
	"github.com/soypat/gradmap/glsl"
	"github.com/soypat/gradmap/gradaux"
	"github.com/soypat/gradmap/palette"
	"github.com/soypat/gradmap/render"
)

type Config struct {
	Maps        string `dialsdesc:"Comma separated names of the color maps to preview, empty selects all" dialsflag:"maps"`
	Sequence    string `dialsdesc:"Color sequence or map whose colors draw the sine curves preview" dialsflag:"seq"`
	Out         string `dialsdesc:"Directory to write PNG previews to, empty skips PNG output" dialsflag:"out"`
	Levels      int    `dialsdesc:"Number of filled contour bands" dialsflag:"levels"`
	Height      int    `dialsdesc:"Height of PNG previews in pixels" dialsflag:"height"`
	Terminal    bool   `dialsdesc:"Print color map swatches to the terminal" dialsflag:"term"`
	GLSL        bool   `dialsdesc:"Print GLSL functions of the color maps" dialsflag:"glsl"`
	UI          bool   `dialsdesc:"Display the color maps in an OpenGL window" dialsflag:"ui"`
	PaletteFile string `dialsdesc:"TOML or YAML file with extra color maps, defaults to the user palette file"`
	Silent      bool   `dialsdesc:"Disable logging"`
}

// DefaultConfig returns the configuration used when no flags or environment variables are set.
func DefaultConfig() *Config {
	return &Config{
		Sequence: palette.Base,
		Levels:   render.DefaultLevels,
		Height:   256,
		Terminal: true,
	}
}

func init() {
	runtime.LockOSThread() // GLFW must run on the main OS thread.
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := DefaultConfig()
	flagSrc, err := flag.NewCmdLineSet(flag.DefaultFlagNameConfig(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	d, err := dials.Config(ctx, cfg, &env.Source{}, flagSrc)
	if err != nil {
		log.Fatal(err)
	}
	cfg = d.View()
	err = run(ctx, cfg, os.Stdout, newLogger(os.Stderr, cfg.Silent))
	if err != nil {
		log.Fatal(err)
	}
}

func newLogger(w io.Writer, silent bool) *slog.Logger {
	if silent {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

func run(ctx context.Context, cfg *Config, stdout io.Writer, logger *slog.Logger) error {
	available, err := loadMaps(cfg.PaletteFile, logger)
	if err != nil {
		return err
	}
	maps, err := selectMaps(available, cfg.Maps)
	if err != nil {
		return err
	}
	seq, err := curveSequence(available, cfg.Sequence)
	if err != nil {
		return err
	}
	if cfg.Terminal {
		out := termenv.NewOutput(stdout)
		acfg := render.ANSIConfig{Profile: out.Profile}
		for _, m := range maps {
			_, err = render.WriteANSI(out, m, acfg)
			if err != nil {
				return err
			}
		}
	}
	if cfg.GLSL {
		for _, m := range maps {
			_, err = glsl.WriteColorMap(stdout, m)
			if err != nil {
				return err
			}
		}
	}
	if cfg.Out != "" {
		err = gradaux.Preview(maps, seq, gradaux.PreviewConfig{
			Dir:    cfg.Out,
			Height: cfg.Height,
			Levels: cfg.Levels,
			Silent: cfg.Silent,
			Logger: logger,
		})
		if err != nil {
			return err
		}
	}
	if cfg.UI {
		err = gradaux.UI(maps, gradaux.UIConfig{Width: 800, Height: 600, Context: ctx})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

// loadMaps returns the prebuilt color maps followed by those in the palette file.
// An empty filename loads the user palette file if there is one.
// Palette file maps replace prebuilt maps of the same name.
func loadMaps(filename string, logger *slog.Logger) ([]*gradmap.Map, error) {
	maps := palette.Maps()
	if filename == "" {
		userFile, err := palette.UserFile()
		if err != nil {
			return maps, nil // No user palette file.
		}
		filename = userFile
	}
	extra, err := palette.LoadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("palette file not found: %w", err)
	} else if err != nil {
		return nil, err
	}
	logger.Info("loaded palette file", slog.String("file", filename), slog.Int("maps", len(extra)))
	for _, m := range extra {
		replaced := false
		for i := range maps {
			if maps[i].Name() == m.Name() {
				maps[i] = m
				replaced = true
				logger.Warn("palette file overrides color map", slog.String("name", m.Name()))
				break
			}
		}
		if !replaced {
			maps = append(maps, m)
		}
	}
	return maps, nil
}

// selectMaps picks the comma separated names out of maps in the order given. Empty names selects all maps.
func selectMaps(maps []*gradmap.Map, names string) ([]*gradmap.Map, error) {
	if strings.TrimSpace(names) == "" {
		return maps, nil
	}
	var selected []*gradmap.Map
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		m := findMap(maps, name)
		if m == nil {
			return nil, fmt.Errorf("unknown color map %q", name)
		}
		selected = append(selected, m)
	}
	return selected, nil
}

func curveSequence(maps []*gradmap.Map, name string) (gradmap.Sequence, error) {
	if name == "" {
		return nil, nil
	}
	if m := findMap(maps, name); m != nil {
		return m.Colors(), nil
	}
	seq, ok := palette.Sequence(name)
	if !ok {
		return nil, fmt.Errorf("unknown color sequence %q", name)
	}
	return seq, nil
}

func findMap(maps []*gradmap.Map, name string) *gradmap.Map {
	for _, m := range maps {
		if m.Name() == name {
			return m
		}
	}
	return nil
}
