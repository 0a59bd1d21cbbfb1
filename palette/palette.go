// Package palette provides named hex colors, curated color sequences and the
// color maps built from them. All tables are built once at package
// initialization and never change afterwards.
package palette

import (
	"slices"

	"github.com/soypat/gradmap"
)

// Basic triadic colors.
const (
	LightBlue  = "#19AFFF"
	Goldenrod  = "#FFF800"
	CornellRed = "#B20915"
)

// Complements of the triadic colors.
const (
	SoftOrange       = "#FF8F00"
	ComplementPurple = "#4A00B2"
	ChristmasGreen   = "#00B22B"
)

// "Split the difference" triadic colors.
const (
	SplitOrange = "#FF9E00"
	RoyalPurple = "#6609B2"
	LightGreen  = "#00FF62"
)

// Autumn colors.
const (
	OctoberPurple = "#662845"
	OctoberGreen  = "#577867"
	OctoberYellow = "#EDCE82"
	OctoberOrange = "#D68644"
	OctoberRed    = "#AB3229"
)

// Solid colors.
const (
	SolidPurple = "#530066"
	SolidBlue   = "#000452"
	SolidCyan   = "#2DB2AE"
	SolidGreen  = "#005418"
	SolidYellow = "#FFFF0D"
	SolidOrange = "#FF5900"
	SolidMaroon = "#590000"
)

// Bright colors.
const (
	BrightPurple = "#9754E8"
	BrightIndigo = "#AB41FF"
	BrightBlue   = "#5CC0FF"
	BrightGreen  = "#00FF48"
	BrightYellow = "#FFFC40"
	BrightOrange = "#FFB042"
	BrightRed    = "#FF0000"
)

// Pastel colors.
const (
	PastelPurple = "#CCBCE8"
	PastelBlue   = "#9B94FF"
	PastelCyan   = "#B2E8DA"
	PastelGreen  = "#8BFFC5"
	PastelOrange = "#FFF6BF"
	PastelBrown  = "#E8C090"
	PastelYellow = "#FEFFA8"
	PastelPink   = "#FFB0E3"
	PastelRed    = "#FF978B"
)

// Sequence and map names.
const (
	Base       = "base"
	Complement = "complement"
	Split      = "split"
	ROYGBIV1   = "roygbiv1"
	ROYGBIV2   = "roygbiv2"
	October    = "october"
	Solid      = "solid"
	Bright     = "bright"
	Pastel     = "pastel"
)

// hexTables lists every sequence in registry order.
var hexTables = []struct {
	name   string
	colors []string
	isMap  bool
}{
	{Base, []string{LightBlue, Goldenrod, CornellRed}, false},
	{Complement, []string{SoftOrange, ComplementPurple, ChristmasGreen}, false},
	{Split, []string{SplitOrange, RoyalPurple, LightGreen}, false},
	// Purple to red.
	{ROYGBIV1, []string{ComplementPurple, LightBlue, ChristmasGreen, Goldenrod, SoftOrange, CornellRed}, true},
	{ROYGBIV2, []string{RoyalPurple, LightBlue, LightGreen, Goldenrod, SplitOrange, CornellRed}, true},
	{October, []string{OctoberPurple, OctoberGreen, OctoberYellow, OctoberOrange, OctoberRed}, true},
	{Solid, []string{SolidPurple, SolidBlue, SolidCyan, SolidGreen, SolidYellow, SolidOrange, SolidMaroon}, true},
	{Bright, []string{BrightPurple, BrightIndigo, BrightBlue, BrightGreen, BrightYellow, BrightOrange, BrightRed}, true},
	{Pastel, []string{PastelPurple, PastelBlue, PastelCyan, PastelGreen, PastelOrange, PastelBrown, PastelYellow, PastelPink, PastelRed}, true},
}

var (
	sequences     = make(map[string]gradmap.Sequence)
	maps          = make(map[string]*gradmap.Map)
	sequenceNames []string
	mapNames      []string
)

func init() {
	var bld gradmap.Builder // Static tables are valid; panic otherwise.
	for _, tbl := range hexTables {
		seq := bld.ParseSequence(tbl.colors...)
		sequences[tbl.name] = seq
		sequenceNames = append(sequenceNames, tbl.name)
		if tbl.isMap {
			maps[tbl.name] = bld.Build(seq, tbl.name, gradmap.DefaultGradation)
			mapNames = append(mapNames, tbl.name)
		}
	}
}

// Names returns the names of all prebuilt color maps in registry order.
func Names() []string { return slices.Clone(mapNames) }

// SequenceNames returns the names of all color sequences in registry order,
// including the three color triads that have no map.
func SequenceNames() []string { return slices.Clone(sequenceNames) }

// Map returns the prebuilt color map with the given name.
func Map(name string) (*gradmap.Map, bool) {
	m, ok := maps[name]
	return m, ok
}

// Sequence returns a copy of the named color sequence.
func Sequence(name string) (gradmap.Sequence, bool) {
	seq, ok := sequences[name]
	return seq.Clone(), ok
}

// Maps returns all prebuilt color maps in registry order.
func Maps() []*gradmap.Map {
	all := make([]*gradmap.Map, len(mapNames))
	for i, name := range mapNames {
		all[i] = maps[name]
	}
	return all
}
