package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/ablehire/jobs-api/internal/entities"
)

type jobSearcher interface {
	Search(ctx context.Context, request entities.SearchRequest) *entities.SearchResponse
}

type historyReader interface {
	GetRecent(ctx context.Context, limit int) ([]entities.SearchRecord, error)
}

// API holds the handler dependencies.
type API struct {
	jobs    jobSearcher
	history historyReader
}

func NewAPI(jobs jobSearcher, history historyReader) *API {
	return &API{jobs: jobs, history: history}
}

func SetupRoutes(router *gin.Engine, api *API) {
	router.GET("/api/jobs", api.SearchJobsHandler)
	router.GET("/api/history", api.RecentSearchesHandler)
}
