package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type SearxngConfig struct {
	InstanceURL string
	APIKey      string
	Timeout     time.Duration
}

// SearxngProvider queries a self-hosted SearXNG instance.
type SearxngProvider struct {
	instanceURL string
	apiKey      string
	httpClient  *http.Client
}

func NewSearxngProvider(cfg SearxngConfig) (*SearxngProvider, error) {
	if cfg.InstanceURL == "" {
		return nil, fmt.Errorf("SearXNG instance URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &SearxngProvider{
		instanceURL: cfg.InstanceURL,
		apiKey:      cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

func (p *SearxngProvider) Name() string {
	return "searxng"
}

type searxngResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

func (p *SearxngProvider) Search(ctx context.Context, query string, count int) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.instanceURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build searxng request: %w", err)
	}
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searxng request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("searxng returned status %d", resp.StatusCode)
	}

	var decoded searxngResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode searxng response: %w", err)
	}

	results := make([]Result, 0, count)
	for _, item := range decoded.Results {
		if len(results) == count {
			break
		}
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: item.Content,
		})
	}

	return results, nil
}
