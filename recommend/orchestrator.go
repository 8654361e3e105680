package recommend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/TaddsTechnology/huematch-api/colorspace"
	"github.com/TaddsTechnology/huematch-api/models"
	"github.com/TaddsTechnology/huematch-api/seasons"
	"github.com/TaddsTechnology/huematch-api/tones"
)

// ErrAllSourcesUnavailable means the local fallback itself failed after
// both remote tiers did. The local tables are fixed, so outside of a
// corrupted build this is unreachable.
var ErrAllSourcesUnavailable = errors.New("all recommendation sources unavailable")

// ErrNoInput is returned when neither a sample color nor a tone id was
// supplied.
var ErrNoInput = errors.New("a sample color or skin tone id is required")

const localMessage = "Palette derived locally from the seasonal color reference tables."

// Orchestrator tries each data source in order and returns the first
// usable palette. Remote failures are logged and swallowed; the caller
// only ever sees an error for bad input or a broken local pipeline.
type Orchestrator struct {
	primary   Source
	secondary Source
}

func NewOrchestrator(primary, secondary Source) *Orchestrator {
	return &Orchestrator{primary: primary, secondary: secondary}
}

// Recommend produces a recommendation for a sample hex color and/or a
// known tone id. The input color is validated before any network call;
// a malformed hex fails immediately with ErrInvalidColorFormat.
//
// When only a color is given, the sample is classified locally first so
// both remote tiers are keyed by the same tone id the fallback would
// use. The returned classification is nil when no sample was supplied.
func (o *Orchestrator) Recommend(ctx context.Context, hexColor, skinTone string) (models.RecommendationResponse, *models.ClassificationResult, error) {
	hexColor = strings.TrimSpace(hexColor)
	skinTone = strings.TrimSpace(skinTone)

	if hexColor == "" && skinTone == "" {
		return models.RecommendationResponse{}, nil, ErrNoInput
	}

	var classification *models.ClassificationResult
	toneID := 0

	if hexColor != "" {
		sample, err := colorspace.HexToRGB(hexColor)
		if err != nil {
			return models.RecommendationResponse{}, nil, err
		}
		result := tones.Classify(sample)
		classification = &result
	}

	if skinTone != "" {
		id, err := models.ParseToneCode(skinTone)
		if err != nil {
			return models.RecommendationResponse{}, classification, fmt.Errorf("%w: %v", seasons.ErrUnknownToneID, err)
		}
		if _, ok := tones.ByID(id); !ok {
			return models.RecommendationResponse{}, classification, fmt.Errorf("%w: %d", seasons.ErrUnknownToneID, id)
		}
		toneID = id
	} else {
		toneID = classification.ToneID
	}

	toneCode := models.ToneCode(toneID)
	cleanHex := ""
	if classification != nil {
		cleanHex = strings.TrimPrefix(classification.SampleHex, "#")
	}

	for _, source := range []Source{o.primary, o.secondary} {
		if source == nil {
			continue
		}
		recommendation, err := source.Fetch(ctx, cleanHex, toneCode)
		if err != nil {
			log.Printf("recommendation source %s failed, falling through: %v", source.Name(), err)
			continue
		}
		return recommendation, classification, nil
	}

	recommendation, err := o.localRecommendation(toneID, toneCode)
	if err != nil {
		return models.RecommendationResponse{}, classification, err
	}
	return recommendation, classification, nil
}

// localRecommendation is the pure-computation tier: tone id through the
// seasonal resolver, labeled so callers can tell it apart from the
// remote services.
func (o *Orchestrator) localRecommendation(toneID int, toneCode string) (models.RecommendationResponse, error) {
	palette, err := seasons.Resolve(toneID)
	if err != nil {
		if errors.Is(err, seasons.ErrUnknownToneID) {
			return models.RecommendationResponse{}, err
		}
		return models.RecommendationResponse{}, fmt.Errorf("%w: %v", ErrAllSourcesUnavailable, err)
	}

	return models.RecommendationResponse{
		ColorsThatSuit: palette.Recommended,
		SeasonalType:   palette.SeasonalType,
		SkinTone:       toneCode,
		Message:        localMessage,
	}, nil
}
