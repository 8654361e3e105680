package seasons

import (
	"errors"
	"testing"

	"github.com/TaddsTechnology/huematch-api/colorspace"
	"github.com/TaddsTechnology/huematch-api/tones"
)

func TestEveryToneMapsToOneSeason(t *testing.T) {
	t.Parallel()

	for id := 1; id <= 10; id++ {
		season, err := SeasonForTone(id)
		if err != nil {
			t.Fatalf("SeasonForTone(%d): %v", id, err)
		}
		if season == "" {
			t.Errorf("tone %d has an empty seasonal type", id)
		}
	}
}

func TestReferencedSeasonsHaveNonEmptyPalettes(t *testing.T) {
	t.Parallel()

	for id := 1; id <= 10; id++ {
		palette, err := Resolve(id)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", id, err)
		}
		if len(palette.Recommended) == 0 {
			t.Errorf("tone %d season %q has no recommended colors", id, palette.SeasonalType)
		}
		if len(palette.Avoid) == 0 {
			t.Errorf("tone %d season %q has no avoid colors", id, palette.SeasonalType)
		}
	}
}

func TestAllPalettesAreWellFormed(t *testing.T) {
	t.Parallel()

	palettes := Palettes()
	if len(palettes) != 12 {
		t.Fatalf("expected 12 seasonal palettes, got %d", len(palettes))
	}

	for season, palette := range palettes {
		if palette.SeasonalType != season {
			t.Errorf("palette keyed %q names itself %q", season, palette.SeasonalType)
		}
		if len(palette.Recommended) == 0 || len(palette.Avoid) == 0 {
			t.Errorf("season %q has an empty swatch list", season)
		}

		for _, c := range append(palette.Recommended, palette.Avoid...) {
			if c.Name == "" {
				t.Errorf("season %q has an unnamed swatch %q", season, c.Hex)
			}
			if _, err := colorspace.HexToRGB(c.Hex); err != nil {
				t.Errorf("season %q swatch %q has bad hex %q: %v", season, c.Name, c.Hex, err)
			}
		}
	}
}

func TestToneSeasonsMatchReferenceTable(t *testing.T) {
	t.Parallel()

	for _, tone := range tones.Table() {
		season, err := SeasonForTone(tone.ID)
		if err != nil {
			t.Fatalf("SeasonForTone(%d): %v", tone.ID, err)
		}
		if season != tone.Seasonal {
			t.Errorf("tone %d: resolver says %q, reference table says %q", tone.ID, season, tone.Seasonal)
		}
	}
}

func TestResolveRejectsUnknownToneID(t *testing.T) {
	t.Parallel()

	for _, id := range []int{0, -3, 11, 100} {
		_, err := Resolve(id)
		if !errors.Is(err, ErrUnknownToneID) {
			t.Errorf("Resolve(%d) error = %v, want ErrUnknownToneID", id, err)
		}
	}
}

func TestToneSeasonAssignments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		toneID int
		want   string
	}{
		{1, "Light Spring"},
		{5, "Warm Autumn"},
		{10, "Cool Winter"},
	}

	for _, tt := range tests {
		got, err := SeasonForTone(tt.toneID)
		if err != nil {
			t.Fatalf("SeasonForTone(%d): %v", tt.toneID, err)
		}
		if got != tt.want {
			t.Errorf("SeasonForTone(%d) = %q, want %q", tt.toneID, got, tt.want)
		}
	}
}
