package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Mahesh20s/job-portal/internal/apperr"
)

// abortWithError maps any error onto the JSON error shape. Unexpected errors
// become a 500 with their cause logged, never echoed.
func abortWithError(c *gin.Context, err error) {
	ae := apperr.From(err)
	if ae.Status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.AbortWithStatusJSON(ae.Status, gin.H{"error": ae})
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.NotFound("Not found.")
	}
	return uint(id), nil
}

// pageParam reads the page query parameter. Garbage falls back to page 1,
// matching form navigation that never errors on a bad page value.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// isAJAX reports whether the request came from a script-driven client.
func isAJAX(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
