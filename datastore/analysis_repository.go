package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/TaddsTechnology/huematch-api/models"
)

// AnalysisRepository stores at most one analysis per user: the most
// recent classification, replaced on every new analysis.
type AnalysisRepository interface {
	SaveLatest(analysis models.Analysis) (models.Analysis, error)
	GetLatest(userID string) (models.Analysis, error)
	DeleteForUser(userID string) error
}

type AnalysisDatabase struct {
	database *sql.DB
}

func NewAnalysisDatabase(db *sql.DB) (AnalysisDatabase, error) {
	var analysisDB AnalysisDatabase
	analysisDB.database = db
	return analysisDB, nil
}

// SaveLatest upserts the user's cached analysis.
func (adb AnalysisDatabase) SaveLatest(analysis models.Analysis) (models.Analysis, error) {
	db := adb.database

	sqlStatement := `
		INSERT INTO analyses (analysis_id, user_id, sample_hex, tone_code, score, undertone, seasonal_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			analysis_id = EXCLUDED.analysis_id,
			sample_hex = EXCLUDED.sample_hex,
			tone_code = EXCLUDED.tone_code,
			score = EXCLUDED.score,
			undertone = EXCLUDED.undertone,
			seasonal_type = EXCLUDED.seasonal_type,
			created_at = EXCLUDED.created_at`

	_, insertErr := db.Exec(
		sqlStatement,
		analysis.AnalysisID,
		analysis.UserID,
		analysis.SampleHex,
		analysis.ToneCode,
		analysis.Score,
		analysis.Undertone,
		analysis.SeasonalType,
		analysis.CreatedAt,
	)

	if insertErr != nil {
		return models.Analysis{}, fmt.Errorf("failed to save analysis: %v", insertErr)
	}

	return analysis, nil
}

// GetLatest retrieves the user's cached analysis.
func (adb AnalysisDatabase) GetLatest(userID string) (models.Analysis, error) {
	db := adb.database

	sqlStatement := `
		SELECT analysis_id, user_id, sample_hex, tone_code, score, undertone, seasonal_type, created_at
		FROM analyses
		WHERE user_id = $1`

	row := db.QueryRow(sqlStatement, userID)

	var analysis models.Analysis
	scanErr := row.Scan(
		&analysis.AnalysisID,
		&analysis.UserID,
		&analysis.SampleHex,
		&analysis.ToneCode,
		&analysis.Score,
		&analysis.Undertone,
		&analysis.SeasonalType,
		&analysis.CreatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.Analysis{}, NoRowsError{true, scanErr}
	case nil:
		return analysis, nil
	default:
		return models.Analysis{}, scanErr
	}
}

// DeleteForUser clears the cached analysis for a user.
func (adb AnalysisDatabase) DeleteForUser(userID string) error {
	db := adb.database

	_, err := db.Exec(`DELETE FROM analyses WHERE user_id = $1`, userID)
	return err
}
