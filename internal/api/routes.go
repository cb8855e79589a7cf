package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/search-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/search-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(models.HealthResponse{}).
			Returns(200, "OK", models.HealthResponse{}))

	ws.
		Route(ws.GET("config").
			To(handler.Config).
			Doc("Static service configuration").
			Metadata(restfulspec.KeyOpenAPITags, []string{"config"}).
			Writes(models.ConfigResponse{}).
			Returns(200, "OK", models.ConfigResponse{}))

	ws.
		Route(ws.POST("query").
			To(handler.Query).
			Doc("Answer a natural-language query").
			Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
			Reads(models.QueryRequest{}).
			Writes(models.QueryResponse{}).
			Returns(200, "OK", models.QueryResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("history").
			To(handler.History).
			Doc("Recent answered queries").
			Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
			Param(ws.QueryParameter("limit", "Maximum entries to return (1-100, default: 20)").DataType("integer").Required(false)).
			Writes([]models.HistoryEntry{}).
			Returns(200, "OK", []models.HistoryEntry{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
