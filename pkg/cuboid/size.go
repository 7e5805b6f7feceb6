package cuboid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/cuboid/pkg/transform"
)

// DefaultUnit is used when Dimensions.Unit is empty.
const DefaultUnit = "px"

type sizeKind uint8

const (
	sizeUnset sizeKind = iota
	sizeMagnitude
	sizeRaw
)

// Size is a width or height: either a bare magnitude that is combined with
// the cuboid's unit, or a preformatted CSS size used verbatim ("auto",
// "calc(100% - 2em)"). The zero Size is neither and is reported as a
// configuration error when built.
type Size struct {
	kind sizeKind
	mag  float64
	raw  string
}

// Magnitude returns a Size that is formatted with the cuboid's unit.
func Magnitude(v float64) Size {
	return Size{kind: sizeMagnitude, mag: v}
}

// Raw returns a Size that is used exactly as given.
func Raw(s string) Size {
	return Size{kind: sizeRaw, raw: s}
}

// SizeOf converts a loosely typed value, as decoded from a config file or a
// script, into a Size. Numbers become magnitudes and strings become raw
// sizes; anything else yields the invalid zero Size.
func SizeOf(v any) Size {
	switch x := v.(type) {
	case Size:
		return x
	case float64:
		return Magnitude(x)
	case float32:
		return Magnitude(float64(x))
	case int:
		return Magnitude(float64(x))
	case int64:
		return Magnitude(float64(x))
	case int32:
		return Magnitude(float64(x))
	case uint64:
		return Magnitude(float64(x))
	case string:
		return Raw(x)
	default:
		return Size{}
	}
}

// ParseSize reads a size from text such as a command-line flag. A plain
// number is a magnitude and anything else is a raw size. Blank text yields
// the invalid Size.
func ParseSize(text string) Size {
	text = strings.TrimSpace(text)
	if text == "" {
		return Size{}
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return Magnitude(v)
	}
	return Raw(text)
}

// Valid reports whether s is a magnitude or a raw size.
func (s Size) Valid() bool {
	return s.kind != sizeUnset
}

// Magnitude returns the bare magnitude and true when s is a magnitude.
func (s Size) Magnitude() (float64, bool) {
	return s.mag, s.kind == sizeMagnitude
}

// Raw returns the preformatted size and true when s is a raw size.
func (s Size) Raw() (string, bool) {
	return s.raw, s.kind == sizeRaw
}

// Format resolves s against unit. It returns false for the invalid Size.
func (s Size) Format(unit string) (string, bool) {
	switch s.kind {
	case sizeMagnitude:
		return transform.FormatNumber(s.mag) + unit, true
	case sizeRaw:
		return s.raw, true
	default:
		return "", false
	}
}

func (s Size) String() string {
	switch s.kind {
	case sizeMagnitude:
		return transform.FormatNumber(s.mag)
	case sizeRaw:
		return fmt.Sprintf("%q", s.raw)
	default:
		return "<invalid>"
	}
}

// Dimensions describes the box to build.
type Dimensions struct {
	Width  Size
	Height Size
	Depth  float64 // always a magnitude in Unit
	Unit   string  // empty means DefaultUnit
}

// HalfDepth is the distance of the front and back planes from the center plane.
func (d Dimensions) HalfDepth() float64 {
	return d.Depth / 2
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%s x %s x %s (%s)", d.Width, d.Height, transform.FormatNumber(d.Depth), d.Unit)
}
