package seasons

import (
	"errors"
	"fmt"

	"github.com/TaddsTechnology/huematch-api/models"
)

// ErrUnknownToneID is returned when a tone id outside 1..10 reaches the
// resolver. That is a caller bug, never silently defaulted.
var ErrUnknownToneID = errors.New("unknown skin tone id")

// SeasonForTone returns the seasonal type assigned to a tone id.
func SeasonForTone(toneID int) (string, error) {
	season, ok := toneSeasons[toneID]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownToneID, toneID)
	}
	return season, nil
}

// PaletteForSeason returns the palette of a seasonal type.
func PaletteForSeason(seasonalType string) (models.SeasonalPalette, bool) {
	palette, ok := seasonalPalettes[seasonalType]
	return palette, ok
}

// Resolve maps a tone id to its seasonal palette.
func Resolve(toneID int) (models.SeasonalPalette, error) {
	season, err := SeasonForTone(toneID)
	if err != nil {
		return models.SeasonalPalette{}, err
	}

	palette, ok := PaletteForSeason(season)
	if !ok {
		// The two tables are fixed at compile time, so a season without
		// a palette is a corrupted build, not a runtime condition.
		return models.SeasonalPalette{}, fmt.Errorf("no palette defined for seasonal type %q", season)
	}
	return palette, nil
}
