package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TaddsTechnology/huematch-api/models"
	"github.com/TaddsTechnology/huematch-api/recommend"
)

// newTestApp wires an application whose orchestrator has no remote
// tiers, so every analysis resolves through the local pipeline.
func newTestApp() *Application {
	return &Application{
		Config: Config{
			JwtSecret:      "test-secret",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Recommender: recommend.NewOrchestrator(nil, nil),
	}
}

func serve(t *testing.T, app *Application, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.BuildRoutes(http.NewServeMux()).ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeSkinToneLightSample(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := serve(t, app, http.MethodPost, "/v1/analysis", `{"hex_color": "#F6EDE4"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var response models.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if len(response.Recommendation.ColorsThatSuit) == 0 {
		t.Fatal("empty colors_that_suit")
	}
	if response.Recommendation.SeasonalType != "Light Spring" {
		t.Errorf("seasonal type = %q, want Light Spring", response.Recommendation.SeasonalType)
	}
	if response.Classification == nil || response.Classification.ToneID != 1 {
		t.Errorf("unexpected classification: %+v", response.Classification)
	}
	if response.Recommendation.Message == "" {
		t.Error("locally derived palette is unlabeled")
	}
}

func TestAnalyzeSkinToneByToneID(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := serve(t, app, http.MethodPost, "/v1/analysis", `{"skin_tone": "Monk10"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var response models.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if response.Recommendation.SeasonalType != "Cool Winter" {
		t.Errorf("seasonal type = %q, want Cool Winter", response.Recommendation.SeasonalType)
	}
	if response.Classification != nil {
		t.Errorf("expected no classification without a sample, got %+v", response.Classification)
	}
}

func TestAnalyzeSkinToneRejectsMalformedHex(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := serve(t, app, http.MethodPost, "/v1/analysis", `{"hex_color": "zzzzzz"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var handlerErr HandlerError
	if err := json.Unmarshal(rec.Body.Bytes(), &handlerErr); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if handlerErr.ErrorName != "Invalid Color Input" {
		t.Errorf("error name = %q", handlerErr.ErrorName)
	}
}

func TestAnalyzeSkinToneRejectsEmptyRequest(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := serve(t, app, http.MethodPost, "/v1/analysis", `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeSkinToneRequiresPost(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := serve(t, app, http.MethodGet, "/v1/analysis", "")

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestGetReferenceTones(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := serve(t, app, http.MethodGet, "/v1/tones", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var tonesList []models.ReferenceTone
	if err := json.Unmarshal(rec.Body.Bytes(), &tonesList); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(tonesList) != 10 {
		t.Fatalf("expected 10 tones, got %d", len(tonesList))
	}
	if tonesList[0].Hex != "#F6EDE4" || tonesList[9].Hex != "#292420" {
		t.Errorf("tone table out of order: first %s last %s", tonesList[0].Hex, tonesList[9].Hex)
	}
}

func TestGetTonePalette(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := serve(t, app, http.MethodGet, "/v1/tones/palette?tone=Monk05", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var palette models.SeasonalPalette
	if err := json.Unmarshal(rec.Body.Bytes(), &palette); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if palette.SeasonalType != "Warm Autumn" {
		t.Errorf("seasonal type = %q, want Warm Autumn", palette.SeasonalType)
	}
	if len(palette.Recommended) == 0 || len(palette.Avoid) == 0 {
		t.Error("palette lists must be non-empty")
	}
}

func TestGetTonePaletteRejectsUnknownTone(t *testing.T) {
	t.Parallel()

	app := newTestApp()

	for _, tone := range []string{"Monk11", "Monk00", "sparkle"} {
		rec := serve(t, app, http.MethodGet, "/v1/tones/palette?tone="+tone, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("tone %q: status = %d, want 400", tone, rec.Code)
		}
	}
}

func TestGetSeasonalPalettes(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := serve(t, app, http.MethodGet, "/v1/seasons", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var palettes []models.SeasonalPalette
	if err := json.Unmarshal(rec.Body.Bytes(), &palettes); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(palettes) != 12 {
		t.Fatalf("expected 12 seasonal palettes, got %d", len(palettes))
	}
}

func TestLatestAnalysisRequiresAuth(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := serve(t, app, http.MethodGet, "/v1/analysis/latest", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
