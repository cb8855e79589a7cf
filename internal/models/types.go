package models

import (
	"time"
)

type Mode string

const (
	ModeDefault Mode = "default"
	ModePro     Mode = "pro"
	ModeCode    Mode = "code"
)

// Valid reports whether the mode is one of the three recognized values.
func (m Mode) Valid() bool {
	switch m {
	case ModeDefault, ModePro, ModeCode:
		return true
	}
	return false
}

// Incoming HTTP/MCP request
type QueryRequest struct {
	Query string `json:"query" description:"Natural-language query to answer"`
	Mode  string `json:"mode,omitempty" description:"Processing mode: default, pro or code (default: default)"`
}

func (q *QueryRequest) SetDefaults() {
	if q.Mode == "" {
		q.Mode = string(ModeDefault)
	}
}

type QueryResponse struct {
	Response string `json:"response" description:"Synthesized answer"`
}

// Normalized internal object
type QueryContext struct {
	RequestID string    `json:"request_id"`
	Text      string    `json:"text"`
	Mode      Mode      `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status      string   `json:"status" description:"Service status"`
	Date        string   `json:"date" description:"Current date as seen by the agents"`
	ActiveTools []string `json:"active_tools" description:"Names of registered agent tools"`
}

type ConfigResponse struct {
	Model          string   `json:"model" description:"LLM model ID in use"`
	SearchProvider string   `json:"search_provider" description:"Web search provider in use"`
	Reranker       string   `json:"reranker" description:"Reranker in use"`
	Version        string   `json:"version" description:"Service version"`
	ActiveTools    []string `json:"active_tools" description:"Names of registered agent tools"`
}

// One journal entry per answered query
type HistoryEntry struct {
	RequestID   string    `json:"request_id"`
	Mode        string    `json:"mode"`
	Query       string    `json:"query"`
	AnswerChars int       `json:"answer_chars"`
	Duration    int64     `json:"duration_ms"`
	RecordedAt  time.Time `json:"recorded_at"`
}
