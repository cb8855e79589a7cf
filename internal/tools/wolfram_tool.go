package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const wolframBaseURL = "https://api.wolframalpha.com"

// WolframTool answers computational and factual questions through the
// Wolfram Alpha short-answers API. Registered only when an app ID is
// configured.
type WolframTool struct {
	appID      string
	baseURL    string
	httpClient *http.Client
}

func NewWolframTool(appID string) (*WolframTool, error) {
	if appID == "" {
		return nil, fmt.Errorf("Wolfram Alpha app ID is required")
	}

	return &WolframTool{
		appID:   appID,
		baseURL: wolframBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (t *WolframTool) Name() string {
	return "wolfram_alpha"
}

func (t *WolframTool) Description() string {
	return "Answer math, science and factual questions with Wolfram Alpha. Input: a short question. Returns a one-line answer."
}

func (t *WolframTool) Call(ctx context.Context, input string) (string, error) {
	params := url.Values{}
	params.Set("appid", t.appID)
	params.Set("i", input)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/v1/result?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("unable to build wolfram request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("wolfram request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("failed to read wolfram response: %w", err)
	}

	// The short-answers API returns 501 when it cannot interpret the input.
	if resp.StatusCode == http.StatusNotImplemented {
		return "Wolfram Alpha could not interpret the input.", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wolfram returned status %d: %s", resp.StatusCode, string(body))
	}

	return strings.TrimSpace(string(body)), nil
}
