package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"spread/internal/middleware"
	"spread/internal/models"
	"spread/internal/services"
	"spread/internal/utils"
)

// EntertainmentHandler covers movie lookup plus the per-user saved
// movie and show lists.
type EntertainmentHandler struct {
	facade *services.Facade
}

func NewEntertainmentHandler(f *services.Facade) *EntertainmentHandler {
	return &EntertainmentHandler{facade: f}
}

// LookupMovie queries the movie catalog by title. Results are cached,
// and an unknown title is a 404 rather than an upstream error.
func (h *EntertainmentHandler) LookupMovie(c *gin.Context) {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	cacheKey := fmt.Sprintf("movie:lookup:%s", strings.ToLower(title))
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}
	info, err := services.GetMovieService().Lookup(title)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "movie lookup unavailable"})
		return
	}
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}
	utils.GetCache().Set(cacheKey, info, 10*time.Minute)
	c.JSON(http.StatusOK, info)
}

func (h *EntertainmentHandler) SaveMovie(c *gin.Context) {
	h.saveMedia(c, false)
}

func (h *EntertainmentHandler) SaveShow(c *gin.Context) {
	h.saveMedia(c, true)
}

func (h *EntertainmentHandler) saveMedia(c *gin.Context, show bool) {
	var in models.MediaRef
	if !bindJSON(c, &in) {
		return
	}
	actor := middleware.ActorID(c)
	var (
		user *models.User
		err  error
	)
	if show {
		user, err = h.facade.SaveShow(c.Request.Context(), actor, in)
	} else {
		user, err = h.facade.SaveMovie(c.Request.Context(), actor, in)
	}
	if err != nil {
		fail(c, err)
		return
	}
	utils.GetCache().Delete(fmt.Sprintf("user:profile:%d", actor))
	c.JSON(http.StatusOK, user)
}

func (h *EntertainmentHandler) RemoveMovie(c *gin.Context) {
	h.removeMedia(c, false)
}

func (h *EntertainmentHandler) RemoveShow(c *gin.Context) {
	h.removeMedia(c, true)
}

func (h *EntertainmentHandler) removeMedia(c *gin.Context, show bool) {
	actor := middleware.ActorID(c)
	key := c.Param("key")
	var (
		user *models.User
		err  error
	)
	if show {
		user, err = h.facade.RemoveShow(c.Request.Context(), actor, key)
	} else {
		user, err = h.facade.RemoveMovie(c.Request.Context(), actor, key)
	}
	if err != nil {
		fail(c, err)
		return
	}
	utils.GetCache().Delete(fmt.Sprintf("user:profile:%d", actor))
	c.JSON(http.StatusOK, user)
}
