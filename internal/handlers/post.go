package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spread/internal/middleware"
	"spread/internal/services"
	"spread/internal/utils"
)

type PostHandler struct {
	facade *services.Facade
}

func NewPostHandler(f *services.Facade) *PostHandler {
	return &PostHandler{facade: f}
}

func (h *PostHandler) Create(c *gin.Context) {
	var in struct {
		Body string `json:"body"`
	}
	if !bindJSON(c, &in) {
		return
	}
	post, err := h.facade.CreatePost(c.Request.Context(), middleware.ActorID(c), in.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Detail returns the post with its author, comments, and the body
// rendered to sanitized HTML.
func (h *PostHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	view, err := h.facade.GetPost(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"post":      view.Post,
		"author":    view.Author,
		"comments":  view.Comments,
		"body_html": utils.RenderMarkdown(view.Post.Body),
	})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if err := h.facade.DeletePost(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	var in struct {
		Body string `json:"body"`
	}
	if !bindJSON(c, &in) {
		return
	}
	postID := utils.StringToUint(c.Param("id"))
	comment, err := h.facade.CreateComment(c.Request.Context(), middleware.ActorID(c), postID, in.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if err := h.facade.DeleteComment(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
