package rerank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/povarna/generative-ai-agents/search-agent/internal/search"
)

const (
	jinaBaseURL     = "https://api.jina.ai"
	jinaRerankModel = "jina-reranker-v2-base-multilingual"
)

type JinaConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// JinaReranker scores documents against the query with the Jina rerank API.
type JinaReranker struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewJinaReranker(cfg JinaConfig) (*JinaReranker, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Jina API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = jinaBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = jinaRerankModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &JinaReranker{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

func (r *JinaReranker) Name() string {
	return "jina"
}

type jinaRerankRequest struct {
	Model     string   `json:"model"`
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	TopN      int      `json:"top_n"`
}

type jinaRerankResponse struct {
	Results []struct {
		Index          int     `json:"index"`
		RelevanceScore float64 `json:"relevance_score"`
	} `json:"results"`
}

func (r *JinaReranker) Rerank(ctx context.Context, query string, results []search.Result, topN int) ([]search.Result, error) {
	if len(results) == 0 {
		return nil, nil
	}
	if topN <= 0 || topN > len(results) {
		topN = len(results)
	}

	documents := make([]string, 0, len(results))
	for _, result := range results {
		documents = append(documents, result.Title+"\n"+result.Snippet)
	}

	body, err := json.Marshal(jinaRerankRequest{
		Model:     r.model,
		Query:     query,
		Documents: documents,
		TopN:      topN,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to serialize jina request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/rerank", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("unable to build jina request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jina request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("jina returned status %d: %s", resp.StatusCode, string(payload))
	}

	var decoded jinaRerankResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode jina response: %w", err)
	}

	reranked := make([]search.Result, 0, topN)
	for _, scored := range decoded.Results {
		if scored.Index < 0 || scored.Index >= len(results) {
			continue
		}
		reranked = append(reranked, results[scored.Index])
	}

	return reranked, nil
}
