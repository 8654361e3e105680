// Package seasons maps reference tones onto the twelve seasonal color
// types and holds the canonical palette for each type. These tables
// replace the palette literals that used to be copied around the
// presentation layer; this is the single source for them.
package seasons

import "github.com/TaddsTechnology/huematch-api/models"

// toneSeasons is the fixed tone-id to seasonal-type mapping. Several
// tones share a season; every id in 1..10 appears exactly once.
var toneSeasons = map[int]string{
	1:  "Light Spring",
	2:  "Light Summer",
	3:  "Warm Spring",
	4:  "Soft Autumn",
	5:  "Warm Autumn",
	6:  "Deep Autumn",
	7:  "Deep Autumn",
	8:  "Deep Winter",
	9:  "Deep Winter",
	10: "Cool Winter",
}

// seasonalPalettes holds the recommended and avoid swatches per
// seasonal type. Every type carries both lists, including the seasons
// the tone mapping does not currently reach.
var seasonalPalettes = map[string]models.SeasonalPalette{
	"Light Spring": {
		SeasonalType: "Light Spring",
		Recommended: []models.Color{
			{Name: "Peach", Hex: "#FFDAB9"},
			{Name: "Warm Ivory", Hex: "#FFF8E7"},
			{Name: "Coral", Hex: "#FF7F50"},
			{Name: "Light Aqua", Hex: "#9FE2BF"},
			{Name: "Buttercup", Hex: "#FCE883"},
			{Name: "Soft Turquoise", Hex: "#AFE4DE"},
		},
		Avoid: []models.Color{
			{Name: "Black", Hex: "#000000"},
			{Name: "Burgundy", Hex: "#800020"},
			{Name: "Charcoal", Hex: "#36454F"},
		},
	},
	"Warm Spring": {
		SeasonalType: "Warm Spring",
		Recommended: []models.Color{
			{Name: "Marigold", Hex: "#EAA221"},
			{Name: "Warm Coral", Hex: "#F88379"},
			{Name: "Grass Green", Hex: "#7CB342"},
			{Name: "Camel", Hex: "#C19A6B"},
			{Name: "Turquoise", Hex: "#40E0D0"},
			{Name: "Cream", Hex: "#FFFDD0"},
		},
		Avoid: []models.Color{
			{Name: "Cool Gray", Hex: "#8C92AC"},
			{Name: "Fuchsia", Hex: "#FF00FF"},
			{Name: "Black", Hex: "#000000"},
		},
	},
	"Clear Spring": {
		SeasonalType: "Clear Spring",
		Recommended: []models.Color{
			{Name: "Bright Coral", Hex: "#FF6F61"},
			{Name: "Clear Red", Hex: "#E32636"},
			{Name: "Apple Green", Hex: "#8DB600"},
			{Name: "Royal Blue", Hex: "#4169E1"},
			{Name: "Sunflower", Hex: "#FFC512"},
		},
		Avoid: []models.Color{
			{Name: "Dusty Rose", Hex: "#C08081"},
			{Name: "Taupe", Hex: "#8B8589"},
			{Name: "Olive Drab", Hex: "#6B8E23"},
		},
	},
	"Light Summer": {
		SeasonalType: "Light Summer",
		Recommended: []models.Color{
			{Name: "Powder Blue", Hex: "#B0E0E6"},
			{Name: "Rose Pink", Hex: "#FFC0CB"},
			{Name: "Lavender", Hex: "#E6E6FA"},
			{Name: "Soft White", Hex: "#F8F8FF"},
			{Name: "Sky Blue", Hex: "#87CEEB"},
			{Name: "Dove Gray", Hex: "#BEBFC5"},
		},
		Avoid: []models.Color{
			{Name: "Orange", Hex: "#FF8C00"},
			{Name: "Mustard", Hex: "#FFDB58"},
			{Name: "Black", Hex: "#000000"},
		},
	},
	"Cool Summer": {
		SeasonalType: "Cool Summer",
		Recommended: []models.Color{
			{Name: "Raspberry", Hex: "#E30B5D"},
			{Name: "Slate Blue", Hex: "#6A5ACD"},
			{Name: "Soft Fuchsia", Hex: "#C154C1"},
			{Name: "Cool Pink", Hex: "#E75480"},
			{Name: "Spruce", Hex: "#2E5A50"},
		},
		Avoid: []models.Color{
			{Name: "Rust", Hex: "#B7410E"},
			{Name: "Golden Brown", Hex: "#996515"},
			{Name: "Tomato Red", Hex: "#FF6347"},
		},
	},
	"Soft Summer": {
		SeasonalType: "Soft Summer",
		Recommended: []models.Color{
			{Name: "Dusty Rose", Hex: "#C08081"},
			{Name: "Sage", Hex: "#9CAF88"},
			{Name: "Mauve", Hex: "#E0B0FF"},
			{Name: "Pewter", Hex: "#899499"},
			{Name: "Seafoam", Hex: "#93E9BE"},
		},
		Avoid: []models.Color{
			{Name: "Bright Orange", Hex: "#FF5F1F"},
			{Name: "Electric Blue", Hex: "#7DF9FF"},
			{Name: "Pure White", Hex: "#FFFFFF"},
		},
	},
	"Soft Autumn": {
		SeasonalType: "Soft Autumn",
		Recommended: []models.Color{
			{Name: "Warm Sand", Hex: "#D8C0A8"},
			{Name: "Salmon", Hex: "#FA8072"},
			{Name: "Olive", Hex: "#808000"},
			{Name: "Soft Teal", Hex: "#66A5AD"},
			{Name: "Terracotta", Hex: "#E2725B"},
			{Name: "Mushroom", Hex: "#BDACA3"},
		},
		Avoid: []models.Color{
			{Name: "Icy Blue", Hex: "#D6ECEF"},
			{Name: "Magenta", Hex: "#CA1F7B"},
			{Name: "Jet Black", Hex: "#0A0A0A"},
		},
	},
	"Warm Autumn": {
		SeasonalType: "Warm Autumn",
		Recommended: []models.Color{
			{Name: "Rust", Hex: "#B7410E"},
			{Name: "Mustard", Hex: "#FFDB58"},
			{Name: "Moss Green", Hex: "#8A9A5B"},
			{Name: "Burnt Orange", Hex: "#CC5500"},
			{Name: "Chocolate", Hex: "#7B3F00"},
			{Name: "Teal", Hex: "#008080"},
		},
		Avoid: []models.Color{
			{Name: "Baby Pink", Hex: "#F4C2C2"},
			{Name: "Cool Lavender", Hex: "#CCCCFF"},
			{Name: "Stark White", Hex: "#FFFFFF"},
		},
	},
	"Deep Autumn": {
		SeasonalType: "Deep Autumn",
		Recommended: []models.Color{
			{Name: "Espresso Brown", Hex: "#4B3621"},
			{Name: "Deep Teal", Hex: "#00555A"},
			{Name: "Brick Red", Hex: "#8B2500"},
			{Name: "Forest Green", Hex: "#228B22"},
			{Name: "Aubergine", Hex: "#472C4C"},
			{Name: "Gold", Hex: "#D4AF37"},
		},
		Avoid: []models.Color{
			{Name: "Pastel Pink", Hex: "#FFD1DC"},
			{Name: "Powder Blue", Hex: "#B0E0E6"},
			{Name: "Silver Gray", Hex: "#C0C0C0"},
		},
	},
	"Deep Winter": {
		SeasonalType: "Deep Winter",
		Recommended: []models.Color{
			{Name: "True Black", Hex: "#000000"},
			{Name: "Crimson", Hex: "#DC143C"},
			{Name: "Sapphire", Hex: "#0F52BA"},
			{Name: "Emerald", Hex: "#50C878"},
			{Name: "Pure White", Hex: "#FFFFFF"},
			{Name: "Deep Plum", Hex: "#580F41"},
		},
		Avoid: []models.Color{
			{Name: "Beige", Hex: "#F5F5DC"},
			{Name: "Peach", Hex: "#FFDAB9"},
			{Name: "Golden Yellow", Hex: "#FFDF00"},
		},
	},
	"Cool Winter": {
		SeasonalType: "Cool Winter",
		Recommended: []models.Color{
			{Name: "Ice Blue", Hex: "#99CCFF"},
			{Name: "Magenta", Hex: "#CA1F7B"},
			{Name: "Royal Purple", Hex: "#7851A9"},
			{Name: "Cool Ruby", Hex: "#9B111E"},
			{Name: "Snow White", Hex: "#FFFAFA"},
			{Name: "Cobalt", Hex: "#0047AB"},
		},
		Avoid: []models.Color{
			{Name: "Orange", Hex: "#FF8C00"},
			{Name: "Warm Beige", Hex: "#E8D3B9"},
			{Name: "Olive", Hex: "#808000"},
		},
	},
	"Clear Winter": {
		SeasonalType: "Clear Winter",
		Recommended: []models.Color{
			{Name: "True Red", Hex: "#FF0000"},
			{Name: "Electric Blue", Hex: "#0892D0"},
			{Name: "Hot Pink", Hex: "#FF69B4"},
			{Name: "Black", Hex: "#000000"},
			{Name: "Bright White", Hex: "#FFFFFF"},
		},
		Avoid: []models.Color{
			{Name: "Muted Sage", Hex: "#9CAF88"},
			{Name: "Camel", Hex: "#C19A6B"},
			{Name: "Dusty Mauve", Hex: "#B784A7"},
		},
	},
}

// Palettes returns all seasonal palettes keyed by seasonal type.
func Palettes() map[string]models.SeasonalPalette {
	out := make(map[string]models.SeasonalPalette, len(seasonalPalettes))
	for k, v := range seasonalPalettes {
		out[k] = v
	}
	return out
}
