package smarthome

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPropertyFormat reports a gateway property value that does not match the
// format the device category promises.
var ErrPropertyFormat = errors.New("unexpected property format")

// RGBToHex encodes an RGB integer in [0, 0xFFFFFF] as the gateway's color
// string form: lower-case, zero-padded to six hex digits, prefixed with '#'.
func RGBToHex(rgb int) string {
	return fmt.Sprintf("#%06x", rgb)
}

// HexToRGB decodes the gateway's color string form back to an RGB integer.
func HexToRGB(hex string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q", ErrPropertyFormat, hex)
	}
	return int(n), nil
}
