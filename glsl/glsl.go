// Package glsl writes color maps as GLSL functions so shaders can colorize
// scalar values the same way the CPU renderers do.
package glsl

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"unicode"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/gradmap"
)

// VersionStr is the GLSL version directive written by [StripsFragment].
const VersionStr = "#version 460\n"

// FuncName returns a valid GLSL identifier for a color map name. Invalid
// characters are replaced by underscores and the result is prefixed with "cmap_".
func FuncName(name string) string {
	b := []byte("cmap_")
	for _, c := range name {
		if c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_') {
			b = append(b, byte(c))
		} else {
			b = append(b, '_')
		}
	}
	return string(b)
}

// AppendColorMapFunc appends the declaration of a GLSL function
//
//	vec3 funcName(float t)
//
// which returns the color of m at t, clamping t to [0, 1].
func AppendColorMapFunc(b []byte, funcName string, m *gradmap.Map) []byte {
	colors := m.Colors()
	n := len(colors)
	vecs := make([]ms3.Vec, n)
	for i, c := range colors {
		vecs[i] = c.Vec()
	}
	b = append(b, "vec3 "...)
	b = append(b, funcName...)
	b = append(b, "(float t) {\n"...)
	b = AppendVec3SliceDecl(b, "c", vecs)
	b = append(b, "t = clamp(t, 0.0, 1.0) * "...)
	b = AppendFloat(b, '-', '.', float32(n-1))
	b = append(b, ";\nint i = min(int(floor(t)), "...)
	b = strconv.AppendInt(b, int64(n-2), 10)
	b = append(b, ");\nreturn mix(c[i], c[i+1], t - float(i));\n}\n"...)
	return b
}

// WriteColorMap writes the GLSL function of m named after [FuncName].
func WriteColorMap(w io.Writer, m *gradmap.Map) (int, error) {
	if m == nil {
		return 0, errors.New("nil color map")
	}
	return w.Write(AppendColorMapFunc(nil, FuncName(m.Name()), m))
}

// StripsFragment returns a null terminated fragment shader that paints each map
// as a vertical strip, left to right, t increasing upwards. It expects
// a vTexCoord input in [0, 1].
func StripsFragment(maps []*gradmap.Map) (string, error) {
	if len(maps) == 0 {
		return "", errors.New("no color maps")
	}
	var buf bytes.Buffer
	buf.WriteString(VersionStr)
	var b []byte
	for i, m := range maps {
		if m == nil {
			return "", errors.New("nil color map")
		}
		b = AppendColorMapFunc(b[:0], stripFuncName(i), m)
		buf.Write(b)
	}
	buf.WriteString("in vec2 vTexCoord;\nout vec4 fragColor;\n\nvoid main() {\n")
	b = append(b[:0], "float nstrips = "...)
	b = AppendFloat(b, '-', '.', float32(len(maps)))
	b = append(b, ";\nint strip = int(floor(vTexCoord.x * nstrips));\nvec3 col = vec3(0.0);\n"...)
	for i := range maps {
		b = append(b, "if (strip == "...)
		b = strconv.AppendInt(b, int64(i), 10)
		b = append(b, ") col = "...)
		b = append(b, stripFuncName(i)...)
		b = append(b, "(vTexCoord.y);\n"...)
	}
	b = append(b, "fragColor = vec4(col, 1.0);\n}\n"...)
	buf.Write(b)
	buf.WriteByte(0)
	return buf.String(), nil
}

func stripFuncName(i int) string {
	return "strip" + strconv.Itoa(i)
}

const decimalDigits = 9

// AppendFloat appends v in decimal notation, replacing the sign and decimal point
// characters with neg and decimal. Trailing zeros are trimmed.
func AppendFloat(b []byte, neg, decimal byte, v float32) []byte {
	start := len(b)
	b = strconv.AppendFloat(b, float64(v), 'f', decimalDigits, 32)
	idx := bytes.IndexByte(b[start:], '.')
	if decimal != '.' && idx >= 0 {
		b[start+idx] = decimal
	}
	if b[start] == '-' {
		b[start] = neg
	}
	// Trim zeroes but keep one digit after the decimal point, GLSL needs it to type the literal as float.
	end := len(b)
	for i := len(b) - 1; idx >= 0 && i > idx+start+1 && b[i] == '0'; i-- {
		end--
	}
	return b[:end]
}

// AppendFloats appends s with [AppendFloat] separated by sep.
func AppendFloats(b []byte, sep, neg, decimal byte, s ...float32) []byte {
	for i, v := range s {
		b = AppendFloat(b, neg, decimal, v)
		if sep != 0 && i != len(s)-1 {
			b = append(b, sep)
		}
	}
	return b
}

const maxLineLim = 500

// AppendVec3SliceDecl appends a vec3 array declaration named vec3Varname.
func AppendVec3SliceDecl(b []byte, vec3Varname string, vecs []ms3.Vec) []byte {
	return AppendGenericSliceDecl(b, "vec3", vec3Varname, len(vecs), func(b []byte, i int) []byte {
		v := vecs[i]
		b = append(b, "vec3("...)
		b = AppendFloats(b, ',', '-', '.', v.X, v.Y, v.Z)
		b = append(b, ')')
		return b
	})
}

// AppendGenericSliceDecl appends an array declaration of nelem elements of type typename,
// each written by appendElement.
func AppendGenericSliceDecl(b []byte, typename, varname string, nelem int, appendElement func(b []byte, i int) []byte) []byte {
	lineStart := len(b)
	b = appendStartSliceDecl(b, typename, varname, nelem)
	for i := 0; i < nelem; i++ {
		last := i == nelem-1
		b = appendElement(b, i)
		if !last {
			b = append(b, ',')
			lineLen := len(b) - lineStart
			if lineLen > maxLineLim {
				b = append(b, '\n') // Break up line for long palettes.
				lineStart = len(b)
			}
		}
	}
	b = append(b, ");\n"...)
	return b
}

func appendStartSliceDecl(b []byte, typeName, varName string, length int) []byte {
	l := int64(length)
	typeStart := len(b)
	b = append(b, typeName...)
	b = append(b, "["...)
	b = strconv.AppendInt(b, l, 10)
	b = append(b, ']')
	typeEnd := len(b)
	b = append(b, ' ')
	b = append(b, varName...)
	b = append(b, '=')
	b = append(b, b[typeStart:typeEnd]...) // Reuse typename appended earlier.
	b = append(b, '(')
	return b
}
