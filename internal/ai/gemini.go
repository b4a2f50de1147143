package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pepocho/presupuesto-mix/internal/budget"
	"github.com/pepocho/presupuesto-mix/internal/models"
)

var (
	ErrMissingAPIKey = errors.New("missing gemini api key")
	ErrEmptyResponse = errors.New("empty gemini response")
	ErrNotJSON       = errors.New("gemini returned non-json output")
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient implements Client against the Gemini generateContent REST API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient builds a client for the given key and model.
// The timeout bounds every generateContent call.
func NewGeminiClient(apiKey, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// OptimizePrices asks for 3 market quotes per ingredient.
func (g *GeminiClient) OptimizePrices(ctx context.Context, dishes []models.Dish) ([]budget.IngredientQuotes, error) {
	raw, err := g.generate(ctx, buildOptimizePrompt(dishes))
	if err != nil {
		return nil, err
	}
	return parseOptimizations(raw)
}

// GenerateMenu asks for a full replacement dish list within the budget.
func (g *GeminiClient) GenerateMenu(ctx context.Context, req MenuRequest) ([]models.Dish, error) {
	raw, err := g.generate(ctx, buildMenuPrompt(req))
	if err != nil {
		return nil, err
	}
	return parseMenu(raw)
}

// ParseVoiceOrder extracts shopping items from a transcript.
func (g *GeminiClient) ParseVoiceOrder(ctx context.Context, transcript string) (VoiceOrder, error) {
	raw, err := g.generate(ctx, buildVoicePrompt(transcript))
	if err != nil {
		return VoiceOrder{}, err
	}
	return parseVoiceOrder(raw)
}

// generate runs one generateContent call and returns the model's text part,
// stripped of markdown fences and verified to be JSON.
func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if g.model == "" {
		return "", errors.New("missing gemini model")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 4096,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: status %d: %s", resp.StatusCode, raw)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := stripCodeFences(result.Candidates[0].Content.Parts[0].Text)
	if !json.Valid([]byte(text)) {
		return "", ErrNotJSON
	}
	return text, nil
}
