package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// GeminiAPIEndpoint is the Google Generative Language API base URL.
	GeminiAPIEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	// GeminiModel is the default refinement model.
	GeminiModel = "gemini-3-flash-preview"
)

// Client is the external text-refinement collaborator backed by the Gemini
// API. Callers that must never see a failure wrap it (the editor falls back
// to the original text on any error).
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new Gemini client. An empty model selects the
// default.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = GeminiModel
	}
	return &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: GeminiAPIEndpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// WithEndpoint overrides the API base URL (tests).
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = endpoint
	return c
}

// ========================================
// WIRE TYPES
// ========================================

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Refine asks the model to rewrite one field's prose. contextLabel names
// the field being refined ("summary", "description", ...) so the prompt can
// reference it.
func (c *Client) Refine(ctx context.Context, text, contextLabel string) (refined string, err error) {
	if c.apiKey == "" {
		err = errors.New("refinement disabled: no API key configured")
		return refined, err
	}

	prompt := fmt.Sprintf(
		"You are a professional CV editor. Please refine the following %s for a personal portfolio to make it more professional, concise, and impactful: %q. Return only the refined text without any quotes or additional commentary.",
		contextLabel, text,
	)

	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return refined, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return refined, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return refined, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return refined, err
	}

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("refinement API returned %d: %s", resp.StatusCode, string(body))
		return refined, err
	}

	var genResp generateResponse
	err = json.Unmarshal(body, &genResp)
	if err != nil {
		err = errors.Wrap(err, "failed to parse response")
		return refined, err
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		err = errors.New("refinement API returned no candidates")
		return refined, err
	}

	refined = strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text)
	if refined == "" {
		// an empty rewrite is useless; keep what the owner wrote
		refined = text
	}
	return refined, err
}
