package smarthome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToHex(t *testing.T) {
	testCases := []struct {
		rgb      int
		expected string
	}{
		{rgb: 0, expected: "#000000"},
		{rgb: 255, expected: "#0000ff"},
		{rgb: 31655, expected: "#007ba7"},
		{rgb: 0xFF0000, expected: "#ff0000"},
		{rgb: 0xFFFFFF, expected: "#ffffff"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, RGBToHex(tc.rgb))
	}
}

func TestHexToRGB(t *testing.T) {
	testCases := []struct {
		hex      string
		expected int
	}{
		{hex: "#000000", expected: 0},
		{hex: "#007ba7", expected: 31655},
		{hex: "#ffffff", expected: 0xFFFFFF},
		{hex: "007ba7", expected: 31655}, // prefix is optional on decode
	}

	for _, tc := range testCases {
		rgb, err := HexToRGB(tc.hex)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, rgb)
	}
}

func TestHexToRGB_Invalid(t *testing.T) {
	_, err := HexToRGB("#zzzzzz")
	assert.ErrorIs(t, err, ErrPropertyFormat)
}

func TestColorRoundTrip(t *testing.T) {
	for rgb := 0; rgb <= 0xFFFFFF; rgb += 4099 {
		hex := RGBToHex(rgb)
		require.Len(t, hex, 7, "encoded color must be # plus six hex digits: %s", hex)

		decoded, err := HexToRGB(hex)
		require.NoError(t, err)
		require.Equal(t, rgb, decoded)
	}

	hex := RGBToHex(0xFFFFFF)
	decoded, err := HexToRGB(hex)
	require.NoError(t, err)
	assert.Equal(t, 0xFFFFFF, decoded)
}
