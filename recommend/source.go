// Package recommend produces color recommendations for a skin sample,
// preferring the remote recommendation services and falling back to the
// local seasonal tables when they are unreachable.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/TaddsTechnology/huematch-api/models"
)

// Source is one recommendation data source. Fetch returns an error for
// network failures, non-2xx statuses and malformed or empty bodies; the
// orchestrator treats any error as "try the next tier".
type Source interface {
	Name() string
	Fetch(ctx context.Context, hexColor, skinTone string) (models.RecommendationResponse, error)
}

// HTTPSource queries a remote recommendation service with the
// hex_color / skin_tone parameters. Retry and timeout policy belong to
// the injected http.Client, not here.
type HTTPSource struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewHTTPSource(name, baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{name: name, baseURL: baseURL, client: client}
}

func (s *HTTPSource) Name() string {
	return s.name
}

func (s *HTTPSource) Fetch(ctx context.Context, hexColor, skinTone string) (models.RecommendationResponse, error) {
	endpoint, err := url.Parse(s.baseURL)
	if err != nil {
		return models.RecommendationResponse{}, fmt.Errorf("bad source URL %q: %v", s.baseURL, err)
	}

	query := endpoint.Query()
	if hexColor != "" {
		query.Set("hex_color", hexColor)
	}
	if skinTone != "" {
		query.Set("skin_tone", skinTone)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return models.RecommendationResponse{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.RecommendationResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.RecommendationResponse{}, fmt.Errorf("%s returned status: %d", s.name, resp.StatusCode)
	}

	var recommendation models.RecommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&recommendation); err != nil {
		return models.RecommendationResponse{}, fmt.Errorf("parsing %s response: %v", s.name, err)
	}

	if len(recommendation.ColorsThatSuit) == 0 {
		return models.RecommendationResponse{}, fmt.Errorf("%s returned an empty palette", s.name)
	}

	return recommendation, nil
}
