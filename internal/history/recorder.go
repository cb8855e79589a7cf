package history

import (
	"context"

	"github.com/povarna/generative-ai-agents/search-agent/internal/models"
)

// Recorder journals answered queries. Record is fire-and-forget: it
// must never fail the request path, only log. The journal is write-only
// for the query path; Recent serves the /history endpoint.
type Recorder interface {
	Record(ctx context.Context, entry models.HistoryEntry)
	Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

// NopRecorder is used when no Redis address is configured.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, entry models.HistoryEntry) {}

func (NopRecorder) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	return []models.HistoryEntry{}, nil
}
