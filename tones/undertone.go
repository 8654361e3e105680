package tones

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/TaddsTechnology/huematch-api/colorspace"
)

const (
	UndertoneWarm    = "warm"
	UndertoneCool    = "cool"
	UndertoneNeutral = "neutral"
)

// Skin hues cluster roughly between 14 and 32 degrees; inside that
// range the lean toward yellow or pink is what reads as warm or cool.
const (
	coolHueMax = 15.0
	warmHueMin = 25.0
	warmHueMax = 60.0

	neutralSaturationMax = 0.08
)

// Undertone reports whether a skin sample leans warm (golden), cool
// (pink/blue) or neutral, using the hue of the sample in HSL space.
// Near-gray samples carry no usable hue and report neutral.
func Undertone(sample colorspace.RGB) string {
	c := colorful.Color{
		R: float64(sample.R) / 255.0,
		G: float64(sample.G) / 255.0,
		B: float64(sample.B) / 255.0,
	}

	h, s, _ := c.Hsl()
	if s < neutralSaturationMax {
		return UndertoneNeutral
	}

	switch {
	case h >= warmHueMin && h <= warmHueMax:
		return UndertoneWarm
	case h <= coolHueMax || h >= 300:
		return UndertoneCool
	default:
		return UndertoneNeutral
	}
}
