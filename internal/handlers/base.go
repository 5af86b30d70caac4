package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"spread/internal/services"
)

// fail answers with the typed intent failure, or a logged 500 for
// anything unexpected.
func fail(c *gin.Context, err error) {
	if ie, ok := services.AsIntentError(err); ok {
		payload := gin.H{"code": ie.Code, "error": ie.Message}
		if len(ie.Fields) > 0 {
			payload["fields"] = ie.Fields
		}
		c.JSON(ie.Status, payload)
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("intent failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": services.CodeValidationFailed, "error": err.Error()})
		return false
	}
	return true
}
