package tones

import (
	"testing"

	"github.com/TaddsTechnology/huematch-api/colorspace"
	"github.com/TaddsTechnology/huematch-api/models"
)

func TestTableHasTenOrderedTones(t *testing.T) {
	t.Parallel()

	table := Table()
	if len(table) != 10 {
		t.Fatalf("expected 10 reference tones, got %d", len(table))
	}

	prev := 256.0
	for i, tone := range table {
		if tone.ID != i+1 {
			t.Errorf("tone at index %d has id %d", i, tone.ID)
		}
		if tone.Code != models.ToneCode(tone.ID) {
			t.Errorf("tone %d code = %q", tone.ID, tone.Code)
		}
		if tone.Name == "" || tone.Seasonal == "" {
			t.Errorf("tone %d missing name or seasonal type", tone.ID)
		}

		b := colorspace.Brightness(tone.RGB)
		if b > prev {
			t.Errorf("tone %d (brightness %.2f) is lighter than tone %d (%.2f)", tone.ID, b, tone.ID-1, prev)
		}
		prev = b

		if got := colorspace.RGBToHex(tone.RGB); got != tone.Hex {
			t.Errorf("tone %d hex %q does not round-trip its RGB (%q)", tone.ID, tone.Hex, got)
		}
	}
}

func TestTableReturnsCopy(t *testing.T) {
	t.Parallel()

	first := Table()
	first[0].Name = "mutated"

	if Table()[0].Name == "mutated" {
		t.Fatal("Table exposed its backing storage")
	}
}

func TestByID(t *testing.T) {
	t.Parallel()

	tone, ok := ByID(5)
	if !ok {
		t.Fatal("ByID(5) not found")
	}
	if tone.Hex != "#D7BD96" {
		t.Errorf("tone 5 hex = %q, want #D7BD96", tone.Hex)
	}

	for _, id := range []int{0, -1, 11} {
		if _, ok := ByID(id); ok {
			t.Errorf("ByID(%d) unexpectedly found a tone", id)
		}
	}
}
