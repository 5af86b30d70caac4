package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"spread/internal/middleware"
	"spread/internal/services"
	"spread/internal/utils"
)

// ToolsHandler exposes the small utility lookups: dictionary
// definitions and weather for the signed-in user's location.
type ToolsHandler struct {
	facade *services.Facade
}

func NewToolsHandler(f *services.Facade) *ToolsHandler {
	return &ToolsHandler{facade: f}
}

func (h *ToolsHandler) Define(c *gin.Context) {
	word := strings.TrimSpace(c.Param("word"))
	if word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}
	cacheKey := fmt.Sprintf("dict:%s", strings.ToLower(word))
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}
	entries, err := services.GetDictionaryService().Define(word)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "dictionary unavailable"})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no definitions found"})
		return
	}
	utils.GetCache().Set(cacheKey, entries, time.Hour)
	c.JSON(http.StatusOK, entries)
}

// Weather reports current conditions for the actor's stored zip code,
// or for an explicit ?location= override.
func (h *ToolsHandler) Weather(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		view, err := h.facade.Profile(c.Request.Context(), middleware.ActorID(c))
		if err != nil {
			fail(c, err)
			return
		}
		location = view.User.Zip
	}
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no location on profile, pass ?location="})
		return
	}
	cacheKey := fmt.Sprintf("weather:%s", strings.ToLower(location))
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}
	report, err := services.GetWeatherService().Current(location)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather unavailable"})
		return
	}
	utils.GetCache().Set(cacheKey, report, 15*time.Minute)
	c.JSON(http.StatusOK, report)
}
