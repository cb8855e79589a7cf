package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/search-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/search-agent/internal/history"
	"github.com/povarna/generative-ai-agents/search-agent/internal/models"
	"github.com/povarna/generative-ai-agents/search-agent/internal/router"
	"github.com/rs/zerolog"
)

// QueryRouter dispatches a validated query to an agent handle.
type QueryRouter interface {
	Handle(ctx context.Context, queryCtx models.QueryContext) (models.QueryResponse, error)
}

// ServiceInfo holds the static values reported by /config. Set once at
// start-up, never mutated.
type ServiceInfo struct {
	Model          string
	SearchProvider string
	Reranker       string
	Version        string
	ActiveTools    []string
}

var errQueryFailed = errors.New("query processing failed")

type Handler struct {
	router   QueryRouter
	recorder history.Recorder
	info     ServiceInfo
	logger   *zerolog.Logger
}

func NewHandler(queryRouter QueryRouter, recorder history.Recorder, info ServiceInfo, logger *zerolog.Logger) *Handler {
	return &Handler{
		router:   queryRouter,
		recorder: recorder,
		info:     info,
		logger:   logger,
	}
}

// Health handler GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := models.HealthResponse{
		Status:      "healthy",
		Date:        time.Now().Format("January 02, 2006"),
		ActiveTools: h.info.ActiveTools,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// Config handler GET /config
func (h *Handler) Config(req *restful.Request, resp *restful.Response) {
	configResponse := models.ConfigResponse{
		Model:          h.info.Model,
		SearchProvider: h.info.SearchProvider,
		Reranker:       h.info.Reranker,
		Version:        h.info.Version,
		ActiveTools:    h.info.ActiveTools,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, configResponse)
}

// POST /query
// Body: QueryRequest
// Returns: QueryResponse
func (h *Handler) Query(req *restful.Request, resp *restful.Response) {
	var queryRequest models.QueryRequest
	if err := req.ReadEntity(&queryRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	queryRequest.SetDefaults()

	queryCtx := models.QueryContext{
		RequestID: uuid.NewString(),
		Text:      queryRequest.Query,
		Mode:      models.Mode(queryRequest.Mode),
		CreatedAt: time.Now(),
	}

	h.logger.Info().
		Str("requestID", queryCtx.RequestID).
		Str("mode", string(queryCtx.Mode)).
		Msg("Start query")

	ctx := req.Request.Context()
	now := time.Now()

	queryResponse, err := h.router.Handle(ctx, queryCtx)
	if err != nil {
		if errors.Is(err, router.ErrEmptyQuery) || errors.Is(err, router.ErrUnknownMode) {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}

		// Upstream failure: log the cause, return a generic message only.
		h.logger.Error().
			Err(err).
			Str("requestID", queryCtx.RequestID).
			Msg("Query failed")
		middleware.HandleError(resp, errQueryFailed, http.StatusInternalServerError)
		return
	}

	h.recorder.Record(ctx, models.HistoryEntry{
		RequestID:   queryCtx.RequestID,
		Mode:        string(queryCtx.Mode),
		Query:       queryCtx.Text,
		AnswerChars: len(queryResponse.Response),
		Duration:    time.Since(now).Milliseconds(),
		RecordedAt:  time.Now(),
	})

	h.logger.Info().
		Str("requestID", queryCtx.RequestID).
		Int("answer_chars", len(queryResponse.Response)).
		Msg("Query complete")

	resp.WriteHeaderAndEntity(http.StatusOK, queryResponse)
}

// GET /history?limit=N
func (h *Handler) History(req *restful.Request, resp *restful.Response) {
	limit := 20
	if limitStr := req.QueryParameter("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		} else {
			h.logger.Warn().Str("limit", limitStr).Msg("Invalid limit, using default 20")
		}
	}

	entries, err := h.recorder.Recent(req.Request.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read query journal")
		middleware.HandleError(resp, errors.New("failed to read history"), http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, entries)
}
