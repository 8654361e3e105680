package models

import "time"

// Analysis is the stored copy of a user's most recent skin-tone
// classification. One row per user, replaced on each new analysis.
type Analysis struct {
	AnalysisID   string    `json:"analysisId" db:"analysis_id"`
	UserID       string    `json:"userId" db:"user_id"`
	SampleHex    string    `json:"sampleHex" db:"sample_hex"`
	ToneCode     string    `json:"skinTone" db:"tone_code"`
	Score        float64   `json:"score" db:"score"`
	Undertone    string    `json:"undertone" db:"undertone"`
	SeasonalType string    `json:"seasonalType" db:"seasonal_type"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// AnalyzeRequest is the body of POST /v1/analysis. At least one of
// HexColor and SkinTone must be set.
type AnalyzeRequest struct {
	HexColor string `json:"hex_color"`
	SkinTone string `json:"skin_tone,omitempty"`
}

// AnalyzeResponse pairs the recommendation with the classification
// details that produced it. Classification is omitted when the caller
// supplied a tone id and no sample color.
type AnalyzeResponse struct {
	Recommendation RecommendationResponse `json:"recommendation"`
	Classification *ClassificationResult  `json:"classification,omitempty"`
}
