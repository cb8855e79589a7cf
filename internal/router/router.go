package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/search-agent/internal/agent"
	"github.com/povarna/generative-ai-agents/search-agent/internal/models"
	"github.com/rs/zerolog"
)

var (
	ErrEmptyQuery  = errors.New("query must not be empty")
	ErrUnknownMode = errors.New("unknown mode")
)

// fallbackResponse replaces an empty upstream answer; /query never
// returns an empty response body.
const fallbackResponse = "No response generated."

// Router dispatches a query to the agent handle registered for its
// mode. The dispatch table is built once at start-up and read-only
// afterwards.
type Router struct {
	agents map[models.Mode]agent.Agent
	logger *zerolog.Logger
}

func NewRouter(agents map[models.Mode]agent.Agent, logger *zerolog.Logger) *Router {
	return &Router{
		agents: agents,
		logger: logger,
	}
}

func (r *Router) Handle(ctx context.Context, queryCtx models.QueryContext) (models.QueryResponse, error) {
	if strings.TrimSpace(queryCtx.Text) == "" {
		return models.QueryResponse{}, ErrEmptyQuery
	}

	if !queryCtx.Mode.Valid() {
		return models.QueryResponse{}, fmt.Errorf("%w: %q", ErrUnknownMode, queryCtx.Mode)
	}

	handle, ok := r.agents[queryCtx.Mode]
	if !ok {
		return models.QueryResponse{}, fmt.Errorf("%w: no agent registered for %q", ErrUnknownMode, queryCtx.Mode)
	}

	now := time.Now()
	r.logger.Info().
		Str("requestID", queryCtx.RequestID).
		Str("mode", string(queryCtx.Mode)).
		Str("agent", handle.Name()).
		Msg("dispatching query")

	answer, err := handle.Run(ctx, datedQuery(queryCtx))
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("requestID", queryCtx.RequestID).
			Str("agent", handle.Name()).
			Msg("agent failed")
		return models.QueryResponse{}, fmt.Errorf("agent %s failed: %w", handle.Name(), err)
	}

	if strings.TrimSpace(answer) == "" {
		answer = fallbackResponse
	}

	r.logger.Info().
		Str("requestID", queryCtx.RequestID).
		Str("agent", handle.Name()).
		Dur("duration", time.Since(now)).
		Msg("query complete")

	return models.QueryResponse{Response: answer}, nil
}

// datedQuery prefixes the query with the current date so agents
// reason about "today" correctly.
func datedQuery(queryCtx models.QueryContext) string {
	return fmt.Sprintf("Today is %s. %s", queryCtx.CreatedAt.Format("January 02, 2006"), queryCtx.Text)
}
