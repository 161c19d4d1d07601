package export

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScaling(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		out      PixelType
		mult     float64
		base     float64
	}{
		{"8-bit", 0, 253, UnsignedByte, 1, -1},
		{"8-bit scaled", 1, 507, UnsignedByte, 2, -1},
		{"unsigned word", 3, 65522, UnsignedWord, 1, 0},
		{"signed word", -32752, 32767, SignedWord, 1, 0},
		{"real is unscaled", -5, 5, Real, 1, 0},
		{"flat range", 7, 7, UnsignedByte, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mult, base, err := ComputeScaling(tt.min, tt.max, tt.out)
			require.NoError(t, err)
			assert.InDelta(t, tt.mult, mult, 1e-12)
			assert.InDelta(t, tt.base, base, 1e-9)
		})
	}
}

func TestComputeScalingRoundTrip(t *testing.T) {
	for _, out := range []PixelType{UnsignedByte, SignedWord, UnsignedWord} {
		t.Run(out.String(), func(t *testing.T) {
			mult, base, err := ComputeScaling(-12.5, 480.25, out)
			require.NoError(t, err)

			lo, hi, err := ValidRange(out)
			require.NoError(t, err)

			assert.InDelta(t, -12.5, lo*mult+base, 1e-9)
			assert.InDelta(t, 480.25, hi*mult+base, 1e-9)
		})
	}
}

func TestComputeScalingErrors(t *testing.T) {
	_, _, err := ComputeScaling(10, 1, UnsignedByte)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, _, err = ComputeScaling(0, 1, PixelUnknown)
	require.Error(t, err)
}

func TestPixelSettingsNames(t *testing.T) {
	tests := []struct {
		settings PixelSettings
		pds3     string
		pds4     string
		bits     int
	}{
		{PixelSettings{Type: UnsignedByte}, "MSB_UNSIGNED_INTEGER", "UnsignedByte", 8},
		{PixelSettings{Type: SignedWord, Endian: LSB}, "LSB_INTEGER", "SignedLSB2", 16},
		{PixelSettings{Type: UnsignedWord, Endian: MSB}, "MSB_UNSIGNED_INTEGER", "UnsignedMSB2", 16},
		{PixelSettings{Type: Real, Endian: LSB}, "PC_REAL", "IEEE754LSBSingle", 32},
		{PixelSettings{Type: Real, Endian: MSB}, "IEEE_REAL", "IEEE754MSBSingle", 32},
	}

	for _, tt := range tests {
		t.Run(tt.pds4, func(t *testing.T) {
			assert.Equal(t, tt.pds3, tt.settings.Pds3SampleType())
			assert.Equal(t, tt.pds4, tt.settings.Pds4DataType())
			assert.Equal(t, tt.bits, tt.settings.Type.Bits())
		})
	}
}

func TestParsers(t *testing.T) {
	p, err := ParsePixelType("signedword")
	require.NoError(t, err)
	assert.Equal(t, SignedWord, p)

	_, err = ParsePixelType("Double")
	require.Error(t, err)

	e, err := ParseEndian("MSB")
	require.NoError(t, err)
	assert.Equal(t, MSB, e)

	e, err = ParseEndian("")
	require.NoError(t, err)
	assert.Equal(t, LSB, e)

	_, err = ParseEndian("middle")
	require.Error(t, err)
}

func TestEnumNames(t *testing.T) {
	tests := []struct {
		got  fmt.Stringer
		want string
	}{
		{PixelUnknown, "unknown"},
		{UnsignedByte, "UnsignedByte"},
		{Real, "Real"},
		{PixelType(9), "PixelType(9)"},
		{LSB, "LSB"},
		{MSB, "MSB"},
		{Endian(2), "Endian(2)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}

	for p := UnsignedByte; p <= Real; p++ {
		parsed, err := ParsePixelType(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParsePixelType("unknown")
	require.Error(t, err, "the zero value is not a label spelling")
}
