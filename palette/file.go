package palette

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/soypat/gradmap"
	"gopkg.in/yaml.v3"
)

// Supported palette file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// UserFileName is the path of the user palette file relative to the XDG config directories.
const UserFileName = "gradmap/palettes.toml"

// File is the on-disk layout of a palette file. In TOML:
//
//	[[palette]]
//	name = "sunset"
//	colors = ["#2b1055", "darkorange", "#ffd452"]
//	gradation = 256
type File struct {
	Palettes []Entry `toml:"palette" yaml:"palette"`
}

// Entry defines a single color map. Colors are hex strings or color names.
// A zero Gradation selects [gradmap.DefaultGradation].
type Entry struct {
	Name      string   `toml:"name" yaml:"name"`
	Colors    []string `toml:"colors" yaml:"colors"`
	Gradation int      `toml:"gradation" yaml:"gradation"`
}

// UserFile returns the path of the user's palette file if one exists in the XDG config directories.
func UserFile() (string, error) {
	return xdg.SearchConfigFile(UserFileName)
}

// FormatFromPath returns the palette file format implied by the extension of path.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported palette file extension %q", filepath.Ext(path))
}

// LoadFile reads and builds the color maps defined in the palette file at path.
func LoadFile(path string) ([]*gradmap.Map, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	maps, err := Decode(fp, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return maps, nil
}

// Decode reads a palette file in the given format and builds its color maps.
// Unknown fields are rejected. All invalid entries are reported together.
func Decode(r io.Reader, format string) ([]*gradmap.Map, error) {
	var f File
	switch format {
	case FormatTOML:
		err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f)
		if err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(&f)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown palette file format %q", format)
	}
	return f.Build()
}

// Build parses and builds every entry of f in order.
func (f *File) Build() ([]*gradmap.Map, error) {
	bld := gradmap.Builder{NoPanic: true}
	seen := make(map[string]bool)
	var result []*gradmap.Map
	for i, e := range f.Palettes {
		switch {
		case e.Name == "":
			return nil, fmt.Errorf("palette %d: missing name", i)
		case seen[e.Name]:
			return nil, fmt.Errorf("palette %d: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = true
		seq := bld.ParseSequence(e.Colors...)
		if seq == nil {
			continue
		}
		m := bld.Build(seq, e.Name, e.Gradation)
		if m != nil {
			result = append(result, m)
		}
	}
	if err := bld.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
