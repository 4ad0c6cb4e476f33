package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ablehire/jobs-api/internal/entities"
)

// SearchJobsHandler serves GET /api/jobs. It always answers 200 with
// success: true; upstream degradation is reported through the payload's
// note field, never through the status code.
func (api *API) SearchJobsHandler(c *gin.Context) {

	request := entities.SearchRequest{
		Query:    c.Query("query"),
		Location: c.DefaultQuery("location", entities.DefaultLocation),
		Page:     parseIntOrDefault(c.Query("page"), 1),
		NumPages: parseIntOrDefault(c.Query("num_pages"), 1),
		Filters: entities.AccessibilityFilters{
			WheelchairAccessible: parseBoolFlag(c.Query("wheelchair_accessible")),
			RemoteFriendly:       parseBoolFlag(c.Query("remote_friendly")),
			InclusiveHiring:      parseBoolFlag(c.Query("inclusive_hiring")),
			SignLanguageSupport:  parseBoolFlag(c.Query("sign_language_support")),
			ColorblindFriendlyUI: parseBoolFlag(c.Query("colorblind_friendly_ui")),
		},
	}

	response := api.jobs.Search(c.Request.Context(), request)
	c.JSON(http.StatusOK, response)
}

// parseBoolFlag accepts true/1/yes/on (case-insensitive) as true; anything
// else, including absence, is false.
func parseBoolFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

func parseIntOrDefault(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
