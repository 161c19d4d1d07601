package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"label-translator/internal/pvl"
)

//go:generate go tool stringer -type=PixelType -linecomment -output=pixeltype_string.go

// PixelType is a stored pixel format. String returns the label spelling.
type PixelType int

const (
	PixelUnknown PixelType = iota // unknown
	UnsignedByte
	SignedWord
	UnsignedWord
	Real
)

// Bits returns the stored size of one pixel.
func (p PixelType) Bits() int {
	switch p {
	case UnsignedByte:
		return 8
	case SignedWord, UnsignedWord:
		return 16
	case Real:
		return 32
	default:
		return 0
	}
}

// ParsePixelType accepts the label spelling of a pixel type, any case.
func ParsePixelType(s string) (PixelType, error) {
	for p := UnsignedByte; p <= Real; p++ {
		if strings.EqualFold(p.String(), s) {
			return p, nil
		}
	}

	return PixelUnknown, fmt.Errorf("unknown pixel type %q", s)
}

// Cube is the raster collaborator an export reads from.
type Cube interface {
	Label() *pvl.Object
	PixelType() PixelType
	Samples() int
	Lines() int
	Bands() int
	// Statistics returns the minimum and maximum valid pixel value.
	Statistics() (min, max float64)
}

// MemoryCube is a Cube held in memory. When Pixels is empty Statistics
// reports Min and Max as given.
type MemoryCube struct {
	Lbl    *pvl.Object
	Type   PixelType
	NS     int
	NL     int
	NB     int
	Min    float64
	Max    float64
	Pixels []float64
}

func (c *MemoryCube) Label() *pvl.Object   { return c.Lbl }
func (c *MemoryCube) PixelType() PixelType { return c.Type }
func (c *MemoryCube) Samples() int         { return c.NS }
func (c *MemoryCube) Lines() int           { return c.NL }
func (c *MemoryCube) Bands() int           { return c.NB }

// Statistics skips NaN pixels.
func (c *MemoryCube) Statistics() (float64, float64) {
	if len(c.Pixels) == 0 {
		return c.Min, c.Max
	}

	lo, hi := math.Inf(1), math.Inf(-1)

	for _, p := range c.Pixels {
		if math.IsNaN(p) {
			continue
		}

		lo = min(lo, p)
		hi = max(hi, p)
	}

	if math.IsInf(lo, 1) {
		return 0, 0
	}

	return lo, hi
}

// Cube label locations of the core description.
var (
	dimensionsPath = []string{"IsisCube", "Core", "Dimensions"}
	pixelsPath     = []string{"IsisCube", "Core", "Pixels"}
)

// CubeFromLabel reads dimensions and pixel type from an ISIS cube label.
func CubeFromLabel(label *pvl.Object) (*MemoryCube, error) {
	dims, ok := findPath(label, dimensionsPath)
	if !ok {
		return nil, fmt.Errorf("cube label has no %s group", strings.Join(dimensionsPath, "/"))
	}

	c := &MemoryCube{Lbl: label, Type: Real}

	for _, d := range []struct {
		name string
		dst  *int
	}{
		{"Samples", &c.NS},
		{"Lines", &c.NL},
		{"Bands", &c.NB},
	} {
		kw, ok := dims.FindKeyword(d.name)
		if !ok {
			return nil, fmt.Errorf("cube label has no %s keyword", d.name)
		}

		n, err := strconv.Atoi(kw.First())
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("cube label %s %q is not a positive integer", d.name, kw.First())
		}

		*d.dst = n
	}

	if pixels, ok := findPath(label, pixelsPath); ok {
		if kw, ok := pixels.FindKeyword("Type"); ok {
			t, err := ParsePixelType(kw.First())
			if err != nil {
				return nil, fmt.Errorf("cube label: %w", err)
			}

			c.Type = t
		}
	}

	return c, nil
}

func findPath(root *pvl.Object, path []string) (*pvl.Object, bool) {
	cur := root

	for _, name := range path {
		next, ok := cur.Child(name)
		if !ok {
			return nil, false
		}

		cur = next
	}

	return cur, true
}
