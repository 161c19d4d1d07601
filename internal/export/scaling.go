package export

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Endian -output=endian_string.go

// Endian is the stored byte order.
type Endian int

const (
	LSB Endian = iota
	MSB
)

// ParseEndian accepts "lsb" or "msb" in any case; "" is LSB.
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(s) {
	case "", "lsb":
		return LSB, nil
	case "msb":
		return MSB, nil
	default:
		return LSB, fmt.Errorf("unknown byte order %q, expected lsb or msb", s)
	}
}

// Valid output ranges. The values outside them are reserved for the
// special pixels (null, saturation markers).
const (
	ValidMinUnsignedByte = 1
	ValidMaxUnsignedByte = 254
	ValidMinSignedWord   = -32752
	ValidMaxSignedWord   = 32767
	ValidMinUnsignedWord = 3
	ValidMaxUnsignedWord = 65522
)

// ErrInvalidRange reports an input range with max below min.
var ErrInvalidRange = errors.New("invalid input range")

// ValidRange returns the output range a pixel type may use.
func ValidRange(t PixelType) (float64, float64, error) {
	switch t {
	case UnsignedByte:
		return ValidMinUnsignedByte, ValidMaxUnsignedByte, nil
	case SignedWord:
		return ValidMinSignedWord, ValidMaxSignedWord, nil
	case UnsignedWord:
		return ValidMinUnsignedWord, ValidMaxUnsignedWord, nil
	default:
		return 0, 0, fmt.Errorf("pixel type %s has no integer range", t)
	}
}

// ComputeScaling returns the factor and offset that map stored pixels back
// to the [min, max] input range: value = stored*multiplier + base. Real
// output is stored unscaled.
func ComputeScaling(min, max float64, out PixelType) (multiplier, base float64, err error) {
	if out == Real {
		return 1, 0, nil
	}

	if max < min {
		return 0, 0, fmt.Errorf("%w: max %g below min %g", ErrInvalidRange, max, min)
	}

	outMin, outMax, err := ValidRange(out)
	if err != nil {
		return 0, 0, err
	}

	if max == min {
		return 1, min - outMin, nil
	}

	multiplier = (max - min) / (outMax - outMin)
	base = min - multiplier*outMin

	return multiplier, base, nil
}

// PixelSettings describes the stored pixels of an export.
type PixelSettings struct {
	Type   PixelType
	Endian Endian
	// Min and Max bound the input values mapped onto the output range.
	Min float64
	Max float64
}

// Scaling is ComputeScaling for the settings.
func (s PixelSettings) Scaling() (float64, float64, error) {
	return ComputeScaling(s.Min, s.Max, s.Type)
}

// Pds3SampleType is the PDS3 SAMPLE_TYPE keyword value.
func (s PixelSettings) Pds3SampleType() string {
	switch s.Type {
	case UnsignedByte:
		return "MSB_UNSIGNED_INTEGER"
	case SignedWord:
		return s.Endian.String() + "_INTEGER"
	case UnsignedWord:
		return s.Endian.String() + "_UNSIGNED_INTEGER"
	case Real:
		if s.Endian == MSB {
			return "IEEE_REAL"
		}

		return "PC_REAL"
	default:
		return "UNKNOWN"
	}
}

// Pds4DataType is the PDS4 Element_Array data_type value.
func (s PixelSettings) Pds4DataType() string {
	switch s.Type {
	case UnsignedByte:
		return "UnsignedByte"
	case SignedWord:
		return "Signed" + s.Endian.String() + "2"
	case UnsignedWord:
		return "Unsigned" + s.Endian.String() + "2"
	case Real:
		return "IEEE754" + s.Endian.String() + "Single"
	default:
		return "UNKNOWN"
	}
}
