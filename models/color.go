package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TaddsTechnology/huematch-api/colorspace"
)

// Color is a named swatch. Hex is always a normalized #RRGGBB value and
// Name is never empty.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ReferenceTone is one of the ten fixed skin-tone reference buckets,
// ordered lightest (1) to darkest (10). The table is built at process
// start and never mutated.
type ReferenceTone struct {
	ID       int            `json:"id"`
	Code     string         `json:"code"`
	Name     string         `json:"name"`
	Hex      string         `json:"hex"`
	RGB      colorspace.RGB `json:"rgb"`
	Seasonal string         `json:"seasonal_type"`
}

// SeasonalPalette holds the flattering and to-avoid swatches for one
// seasonal color type. Several reference tones may share one palette.
type SeasonalPalette struct {
	SeasonalType string  `json:"seasonal_type"`
	Recommended  []Color `json:"recommended"`
	Avoid        []Color `json:"avoid"`
}

// ClassificationResult is the transient output of the tone classifier
// for a single sample. Score is the weighted distance to the matched
// reference tone; lower is closer, 0 is an exact reference match.
type ClassificationResult struct {
	ToneID    int            `json:"tone_id"`
	ToneCode  string         `json:"skin_tone"`
	Sample    colorspace.RGB `json:"sample"`
	SampleHex string         `json:"sample_hex"`
	Score     float64        `json:"score"`
	Undertone string         `json:"undertone,omitempty"`
}

// RecommendationResponse is the orchestrator's output. ColorsThatSuit
// is never empty on success.
type RecommendationResponse struct {
	ColorsThatSuit []Color `json:"colors_that_suit"`
	SeasonalType   string  `json:"seasonal_type,omitempty"`
	SkinTone       string  `json:"monk_skin_tone,omitempty"`
	Message        string  `json:"message,omitempty"`
}

// ToneCode formats a tone id as its wire identifier, e.g. 5 -> "Monk05".
func ToneCode(id int) string {
	return fmt.Sprintf("Monk%02d", id)
}

// ParseToneCode accepts "Monk01".."Monk10" or a bare ordinal ("1".."10")
// and returns the tone id. The upstream clients send both forms.
func ParseToneCode(code string) (int, error) {
	trimmed := strings.TrimSpace(code)
	digits := strings.TrimPrefix(trimmed, "Monk")
	digits = strings.TrimPrefix(digits, "monk")

	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("unrecognized skin tone identifier %q", code)
	}
	return id, nil
}
