package colorspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a hex color string is not a
// 6-digit hex value (with or without a leading #).
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is a 24-bit color, one int per channel in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HexToRGB parses a 6-digit hex color, with or without a leading #.
func HexToRGB(hex string) (RGB, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(cleaned) != 6 {
		return RGB{}, fmt.Errorf("%w: %q is not a 6-digit hex color", ErrInvalidColorFormat, hex)
	}

	value, err := strconv.ParseUint(cleaned, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColorFormat, hex)
	}

	return RGB{
		R: int(value >> 16 & 0xFF),
		G: int(value >> 8 & 0xFF),
		B: int(value & 0xFF),
	}, nil
}

// RGBToHex formats a color as an uppercase #RRGGBB string. Channels are
// clamped to [0,255] first.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// Brightness is the arithmetic mean of the three channels on the 0-255
// scale. It is a banding heuristic, not a perceptual luminance measure.
func Brightness(c RGB) float64 {
	return float64(c.R+c.G+c.B) / 3.0
}

// SaturationRatio is (max-min)/max over the channels, in [0,1].
// Pure black reports 0.
func SaturationRatio(c RGB) float64 {
	max := maxChannel(c)
	if max == 0 {
		return 0
	}
	return float64(max-minChannel(c)) / float64(max)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func maxChannel(c RGB) int {
	max := c.R
	if c.G > max {
		max = c.G
	}
	if c.B > max {
		max = c.B
	}
	return max
}

func minChannel(c RGB) int {
	min := c.R
	if c.G < min {
		min = c.G
	}
	if c.B < min {
		min = c.B
	}
	return min
}
