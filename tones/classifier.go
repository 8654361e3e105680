package tones

import (
	"math"

	"github.com/TaddsTechnology/huematch-api/colorspace"
	"github.com/TaddsTechnology/huematch-api/models"
)

// Brightness band thresholds (mean-channel, 0-255). A sample belongs to
// the first band whose minimum it reaches.
const (
	bandVeryLightMin   = 220
	bandLightMin       = 190
	bandLightMediumMin = 150
	bandMediumMin      = 120
	bandMediumDarkMin  = 90
	bandDarkMin        = 60
)

// scoreWeights are the per-band scoring weights. Lighter samples lean on
// brightness and saturation, darker samples on raw RGB distance. The
// values are empirically tuned, not derived; treat them as adjustable.
type scoreWeights struct {
	euclid     float64
	brightness float64
	saturation float64
}

var (
	weightsLight = scoreWeights{euclid: 0.4, brightness: 3.0, saturation: 10}
	weightsMid   = scoreWeights{euclid: 0.6, brightness: 1.5, saturation: 15}
	weightsDark  = scoreWeights{euclid: 0.7, brightness: 2.0, saturation: 20}
)

// brightnessBands maps each band to its candidate tone ids. Plain
// Euclidean distance misclassifies light skin into dark neutrals (and
// the reverse), so candidates are gated by band before scoring. The
// sets overlap at the edges; membership is fixed, not recomputed from
// tone brightness.
var brightnessBands = []struct {
	min        float64
	candidates []int
}{
	{bandVeryLightMin, []int{1, 2}},
	{bandLightMin, []int{2, 3, 4}},
	{bandLightMediumMin, []int{3, 4, 5}},
	{bandMediumMin, []int{4, 5, 6}},
	{bandMediumDarkMin, []int{6, 7, 8}},
	{bandDarkMin, []int{7, 8, 9}},
	{0, []int{8, 9, 10}},
}

// Classify maps a sampled color to the closest reference tone. It is
// deterministic and never fails for a well-formed sample; ties go to
// the lighter tone.
func Classify(sample colorspace.RGB) models.ClassificationResult {
	brightness := colorspace.Brightness(sample)

	candidates := candidatesFor(brightness)
	if len(candidates) == 0 {
		// The bands are exhaustive, so this is unreachable unless the
		// band table itself is corrupted. Score against everything.
		candidates = allToneIDs()
	}

	weights := weightsFor(brightness)

	bestID := 0
	bestScore := math.Inf(1)
	for _, id := range candidates {
		tone, ok := ByID(id)
		if !ok {
			continue
		}
		score := weightedDistance(sample, tone.RGB, weights)
		if score < bestScore {
			bestID = id
			bestScore = score
		}
	}

	return models.ClassificationResult{
		ToneID:    bestID,
		ToneCode:  models.ToneCode(bestID),
		Sample:    sample,
		SampleHex: colorspace.RGBToHex(sample),
		Score:     bestScore,
		Undertone: Undertone(sample),
	}
}

func candidatesFor(brightness float64) []int {
	for _, band := range brightnessBands {
		if brightness >= band.min {
			return band.candidates
		}
	}
	return nil
}

func weightsFor(brightness float64) scoreWeights {
	switch {
	case brightness >= bandLightMin:
		return weightsLight
	case brightness >= bandMediumMin:
		return weightsMid
	default:
		return weightsDark
	}
}

func weightedDistance(sample, reference colorspace.RGB, w scoreWeights) float64 {
	dEuclid := math.Sqrt(
		math.Pow(float64(sample.R-reference.R), 2) +
			math.Pow(float64(sample.G-reference.G), 2) +
			math.Pow(float64(sample.B-reference.B), 2),
	)
	dBright := math.Abs(colorspace.Brightness(sample) - colorspace.Brightness(reference))
	dSat := math.Abs(colorspace.SaturationRatio(sample) - colorspace.SaturationRatio(reference))

	return w.euclid*dEuclid + w.brightness*dBright + w.saturation*dSat
}

func allToneIDs() []int {
	ids := make([]int, Count())
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}
