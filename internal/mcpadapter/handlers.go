package mcpadapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/search-agent/internal/models"
	"github.com/povarna/generative-ai-agents/search-agent/internal/router"
	"github.com/povarna/generative-ai-agents/search-agent/internal/tools"
)

// DeepSearchInput is the MCP tool input schema (matches HTTP API field names).
type DeepSearchInput struct {
	Query string `json:"query" jsonschema:"natural-language query to answer"`
	Mode  string `json:"mode,omitempty" jsonschema:"processing mode: default, pro or code (default: default)"`
}

// WebSearchInput is the MCP tool input schema for raw web search.
type WebSearchInput struct {
	Query string `json:"query" jsonschema:"search query"`
}

// WebSearchOutput holds the reranked sources as formatted text.
type WebSearchOutput struct {
	Sources string `json:"sources"`
}

// NewDeepSearchHandler returns a tool handler that uses the given router.
// Pass the returned function to mcp.AddTool.
func NewDeepSearchHandler(queryRouter *router.Router) func(context.Context, *mcp.CallToolRequest, DeepSearchInput) (*mcp.CallToolResult, models.QueryResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeepSearchInput) (*mcp.CallToolResult, models.QueryResponse, error) {
		return DeepSearch(ctx, queryRouter, req, input)
	}
}

// DeepSearch dispatches the query to the agent handle for its mode.
func DeepSearch(
	ctx context.Context,
	queryRouter *router.Router,
	req *mcp.CallToolRequest,
	input DeepSearchInput,
) (*mcp.CallToolResult, models.QueryResponse, error) {
	request := models.QueryRequest{
		Query: input.Query,
		Mode:  input.Mode,
	}
	request.SetDefaults()

	queryCtx := models.QueryContext{
		RequestID: uuid.NewString(),
		Text:      request.Query,
		Mode:      models.Mode(request.Mode),
		CreatedAt: time.Now(),
	}

	result, err := queryRouter.Handle(ctx, queryCtx)
	return nil, result, err
}

// NewWebSearchHandler returns a tool handler that runs a raw reranked
// web search without answer synthesis.
func NewWebSearchHandler(webSearch *tools.WebSearchTool) func(context.Context, *mcp.CallToolRequest, WebSearchInput) (*mcp.CallToolResult, WebSearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input WebSearchInput) (*mcp.CallToolResult, WebSearchOutput, error) {
		sources, err := webSearch.Call(ctx, input.Query)
		return nil, WebSearchOutput{Sources: sources}, err
	}
}
