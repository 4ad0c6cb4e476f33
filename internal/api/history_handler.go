package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/ablehire/jobs-api/internal/logger"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// RecentSearchesHandler serves GET /api/history, the operational view of
// recently executed searches.
func (api *API) RecentSearchesHandler(c *gin.Context) {

	limit := parseIntOrDefault(c.Query("limit"), defaultHistoryLimit)
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := api.history.GetRecent(c.Request.Context(), limit)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to read search history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to read search history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(records), "searches": records})
}
