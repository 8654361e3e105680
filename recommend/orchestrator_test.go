package recommend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/TaddsTechnology/huematch-api/colorspace"
	"github.com/TaddsTechnology/huematch-api/models"
	"github.com/TaddsTechnology/huematch-api/seasons"
)

func newFakeService(t *testing.T, status int, body string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const goodBody = `{
	"colors_that_suit": [{"name": "Coral", "hex": "#FF7F50"}, {"name": "Peach", "hex": "#FFDAB9"}],
	"seasonal_type": "Light Spring",
	"monk_skin_tone": "Monk01"
}`

func TestRecommendUsesPrimarySource(t *testing.T) {
	t.Parallel()

	var primaryHits, secondaryHits atomic.Int32
	primary := newFakeService(t, http.StatusOK, goodBody, &primaryHits)
	secondary := newFakeService(t, http.StatusOK, `{}`, &secondaryHits)

	o := NewOrchestrator(
		NewHTTPSource("primary", primary.URL, nil),
		NewHTTPSource("secondary", secondary.URL, nil),
	)

	resp, classification, err := o.Recommend(context.Background(), "#F6EDE4", "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.ColorsThatSuit) != 2 || resp.SeasonalType != "Light Spring" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if classification == nil || classification.ToneID != 1 {
		t.Errorf("expected classification of tone 1, got %+v", classification)
	}
	if primaryHits.Load() != 1 {
		t.Errorf("primary hit %d times, want 1", primaryHits.Load())
	}
	if secondaryHits.Load() != 0 {
		t.Errorf("secondary hit %d times, want 0", secondaryHits.Load())
	}
}

func TestRecommendFallsThroughToSecondary(t *testing.T) {
	t.Parallel()

	primary := newFakeService(t, http.StatusInternalServerError, "", nil)
	secondary := newFakeService(t, http.StatusOK, goodBody, nil)

	o := NewOrchestrator(
		NewHTTPSource("primary", primary.URL, nil),
		NewHTTPSource("secondary", secondary.URL, nil),
	)

	resp, _, err := o.Recommend(context.Background(), "#F6EDE4", "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.ColorsThatSuit) == 0 {
		t.Fatal("expected secondary palette")
	}
}

func TestRecommendFallsBackLocallyWhenBothTiersFail(t *testing.T) {
	t.Parallel()

	primary := newFakeService(t, http.StatusInternalServerError, "", nil)
	secondary := newFakeService(t, http.StatusInternalServerError, "", nil)

	o := NewOrchestrator(
		NewHTTPSource("primary", primary.URL, nil),
		NewHTTPSource("secondary", secondary.URL, nil),
	)

	resp, classification, err := o.Recommend(context.Background(), "#F6EDE4", "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.ColorsThatSuit) == 0 {
		t.Fatal("local fallback returned an empty palette")
	}
	if resp.SeasonalType == "" || resp.SkinTone == "" {
		t.Errorf("local fallback missing seasonal type or tone: %+v", resp)
	}
	if resp.Message == "" {
		t.Error("local fallback is not labeled as locally derived")
	}
	if classification == nil {
		t.Fatal("expected a classification for the sampled color")
	}
	if resp.SeasonalType != "Light Spring" {
		t.Errorf("seasonal type = %q, want Light Spring for a very light sample", resp.SeasonalType)
	}
}

func TestRecommendTreatsMalformedBodyAsFailure(t *testing.T) {
	t.Parallel()

	primary := newFakeService(t, http.StatusOK, `{"colors_that_suit": []}`, nil)
	secondary := newFakeService(t, http.StatusOK, `not json`, nil)

	o := NewOrchestrator(
		NewHTTPSource("primary", primary.URL, nil),
		NewHTTPSource("secondary", secondary.URL, nil),
	)

	resp, _, err := o.Recommend(context.Background(), "#292420", "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if resp.Message == "" {
		t.Error("expected the locally derived palette after two malformed bodies")
	}
	if resp.SkinTone != "Monk10" {
		t.Errorf("skin tone = %q, want Monk10", resp.SkinTone)
	}
}

func TestRecommendRejectsMalformedHexBeforeAnyNetworkCall(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	primary := newFakeService(t, http.StatusOK, goodBody, &hits)
	secondary := newFakeService(t, http.StatusOK, goodBody, &hits)

	o := NewOrchestrator(
		NewHTTPSource("primary", primary.URL, nil),
		NewHTTPSource("secondary", secondary.URL, nil),
	)

	_, _, err := o.Recommend(context.Background(), "zzzzzz", "")
	if !errors.Is(err, colorspace.ErrInvalidColorFormat) {
		t.Fatalf("error = %v, want ErrInvalidColorFormat", err)
	}
	if hits.Load() != 0 {
		t.Errorf("remote sources were called %d times for malformed input", hits.Load())
	}
}

func TestRecommendRejectsUnknownToneID(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator(nil, nil)

	for _, tone := range []string{"Monk99", "Monk00", "glitter"} {
		_, _, err := o.Recommend(context.Background(), "", tone)
		if !errors.Is(err, seasons.ErrUnknownToneID) {
			t.Errorf("Recommend(tone %q) error = %v, want ErrUnknownToneID", tone, err)
		}
	}
}

func TestRecommendRequiresSomeInput(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator(nil, nil)

	_, _, err := o.Recommend(context.Background(), "", "")
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("error = %v, want ErrNoInput", err)
	}
}

func TestRecommendWithToneIDOnly(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator(nil, nil)

	resp, classification, err := o.Recommend(context.Background(), "", "Monk05")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if classification != nil {
		t.Errorf("expected no classification without a sample, got %+v", classification)
	}
	if resp.SeasonalType != "Warm Autumn" {
		t.Errorf("seasonal type = %q, want Warm Autumn", resp.SeasonalType)
	}
	if len(resp.ColorsThatSuit) == 0 {
		t.Error("empty palette for a valid tone id")
	}
}

func TestRecommendPassesContractParameters(t *testing.T) {
	t.Parallel()

	var gotHex, gotTone string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHex = r.URL.Query().Get("hex_color")
		gotTone = r.URL.Query().Get("skin_tone")
		w.Write([]byte(goodBody))
	}))
	t.Cleanup(server.Close)

	o := NewOrchestrator(NewHTTPSource("primary", server.URL, nil), nil)

	if _, _, err := o.Recommend(context.Background(), "#D7BD96", ""); err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if gotHex != "D7BD96" {
		t.Errorf("hex_color = %q, want D7BD96 (no # prefix)", gotHex)
	}
	if gotTone != "Monk05" {
		t.Errorf("skin_tone = %q, want Monk05", gotTone)
	}
}

type staticSource struct {
	name string
	resp models.RecommendationResponse
	err  error
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Fetch(ctx context.Context, hexColor, skinTone string) (models.RecommendationResponse, error) {
	return s.resp, s.err
}

func TestRecommendSkipsNilSources(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator(nil, staticSource{
		name: "static",
		resp: models.RecommendationResponse{
			ColorsThatSuit: []models.Color{{Name: "Teal", Hex: "#008080"}},
		},
	})

	resp, _, err := o.Recommend(context.Background(), "#D7BD96", "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.ColorsThatSuit) != 1 || resp.ColorsThatSuit[0].Name != "Teal" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
