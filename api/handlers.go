package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/TaddsTechnology/huematch-api/colorspace"
	"github.com/TaddsTechnology/huematch-api/datastore"
	"github.com/TaddsTechnology/huematch-api/models"
	"github.com/TaddsTechnology/huematch-api/recommend"
	"github.com/TaddsTechnology/huematch-api/seasons"
	"github.com/TaddsTechnology/huematch-api/tones"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Huematch Analysis API")
}

// POST /v1/analysis - Analyze a skin sample and recommend colors
func (app *Application) analyzeSkinTone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	request := &models.AnalyzeRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	recommendation, classification, err := app.Recommender.Recommend(r.Context(), request.HexColor, request.SkinTone)
	if err != nil {
		switch {
		case errors.Is(err, colorspace.ErrInvalidColorFormat),
			errors.Is(err, seasons.ErrUnknownToneID),
			errors.Is(err, recommend.ErrNoInput):
			app.invalidColorInput(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	// Cache the classification for logged-in callers. A cache miss is
	// never worth failing the analysis over.
	if classification != nil {
		if user, authErr := app.getUserFromJWT(r); authErr == nil {
			analysis := models.Analysis{
				AnalysisID:   uuid.New().String(),
				UserID:       user.UserID,
				SampleHex:    classification.SampleHex,
				ToneCode:     classification.ToneCode,
				Score:        classification.Score,
				Undertone:    classification.Undertone,
				SeasonalType: recommendation.SeasonalType,
				CreatedAt:    time.Now(),
			}
			if _, saveErr := app.AnalysisRepo.SaveLatest(analysis); saveErr != nil {
				log.Printf("failed to cache analysis for user %s: %v", user.UserID, saveErr)
			}
		}
	}

	response := models.AnalyzeResponse{
		Recommendation: recommendation,
		Classification: classification,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// GET /v1/analysis/latest - Get the caller's cached analysis
func (app *Application) getLatestAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	analysis, err := app.AnalysisRepo.GetLatest(user.UserID)
	if err != nil {
		if _, ok := err.(datastore.NoRowsError); ok {
			app.badRequest(w, r, errors.New("no analysis cached yet; submit one via /v1/analysis"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(analysis)
}

// GET /v1/tones - Get the reference tone table
func (app *Application) getReferenceTones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tones.Table())
}

// GET /v1/tones/palette?tone=Monk05 - Get the seasonal palette for a tone
func (app *Application) getTonePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	toneParam := r.URL.Query().Get("tone")
	if toneParam == "" {
		app.badRequest(w, r, errors.New("tone query parameter is required"))
		return
	}

	toneID, err := models.ParseToneCode(toneParam)
	if err != nil {
		app.invalidColorInput(w, r, err)
		return
	}

	palette, err := seasons.Resolve(toneID)
	if err != nil {
		if errors.Is(err, seasons.ErrUnknownToneID) {
			app.invalidColorInput(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(palette)
}

// GET /v1/seasons - Get all seasonal palettes
func (app *Application) getSeasonalPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	palettes := seasons.Palettes()

	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	ordered := make([]models.SeasonalPalette, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, palettes[name])
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ordered)
}

// GET /v1/health/sources - Last probe status of the remote sources
func (app *Application) getSourceHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(app.SourceHealth.Statuses())
}
