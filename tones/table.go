// Package tones holds the fixed skin-tone reference table and the
// classifier that maps a sampled color onto it.
package tones

import (
	"fmt"

	"github.com/TaddsTechnology/huematch-api/colorspace"
	"github.com/TaddsTechnology/huematch-api/models"
)

// referenceTones is the Monk scale, ordered lightest to darkest. The
// classifier depends on that ordering: brightness must never increase
// with the id. Seasonal assignments are the product's fixed mapping
// into the twelve seasonal color types.
var referenceTones = []models.ReferenceTone{
	{ID: 1, Name: "Porcelain", Hex: "#F6EDE4", Seasonal: "Light Spring"},
	{ID: 2, Name: "Ivory", Hex: "#F3E7DB", Seasonal: "Light Summer"},
	{ID: 3, Name: "Warm Ivory", Hex: "#F7EAD0", Seasonal: "Warm Spring"},
	{ID: 4, Name: "Sand", Hex: "#EADABA", Seasonal: "Soft Autumn"},
	{ID: 5, Name: "Honey", Hex: "#D7BD96", Seasonal: "Warm Autumn"},
	{ID: 6, Name: "Amber", Hex: "#A07E56", Seasonal: "Deep Autumn"},
	{ID: 7, Name: "Bronze", Hex: "#825C43", Seasonal: "Deep Autumn"},
	{ID: 8, Name: "Umber", Hex: "#604134", Seasonal: "Deep Winter"},
	{ID: 9, Name: "Espresso", Hex: "#3A312A", Seasonal: "Deep Winter"},
	{ID: 10, Name: "Ebony", Hex: "#292420", Seasonal: "Cool Winter"},
}

func init() {
	prev := 256.0
	for i := range referenceTones {
		tone := &referenceTones[i]
		tone.Code = models.ToneCode(tone.ID)

		rgb, err := colorspace.HexToRGB(tone.Hex)
		if err != nil {
			panic(fmt.Sprintf("tones: reference tone %d has bad hex %q: %v", tone.ID, tone.Hex, err))
		}
		tone.RGB = rgb

		// Fail fast on a corrupted table: ids must run light to dark.
		b := colorspace.Brightness(rgb)
		if b > prev {
			panic(fmt.Sprintf("tones: reference tone %d (brightness %.2f) is lighter than tone %d", tone.ID, b, tone.ID-1))
		}
		prev = b
	}
}

// Table returns the full reference tone list, lightest first. The
// returned slice is a copy; the table itself is immutable.
func Table() []models.ReferenceTone {
	out := make([]models.ReferenceTone, len(referenceTones))
	copy(out, referenceTones)
	return out
}

// ByID returns the reference tone for an id in 1..10.
func ByID(id int) (models.ReferenceTone, bool) {
	if id < 1 || id > len(referenceTones) {
		return models.ReferenceTone{}, false
	}
	return referenceTones[id-1], true
}

// Count is the number of reference tones.
func Count() int {
	return len(referenceTones)
}
