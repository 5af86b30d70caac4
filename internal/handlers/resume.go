package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spread/internal/middleware"
	"spread/internal/services"
	"spread/internal/utils"
)

type ResumeHandler struct {
	facade *services.Facade
}

func NewResumeHandler(f *services.Facade) *ResumeHandler {
	return &ResumeHandler{facade: f}
}

func (h *ResumeHandler) List(c *gin.Context) {
	resumes, err := h.facade.ListResumes(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var in services.ResumeInput
	if !bindJSON(c, &in) {
		return
	}
	resume, err := h.facade.CreateResume(c.Request.Context(), middleware.ActorID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	var in services.ResumeInput
	if !bindJSON(c, &in) {
		return
	}
	id := utils.StringToUint(c.Param("id"))
	resume, err := h.facade.UpdateResume(c.Request.Context(), middleware.ActorID(c), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if err := h.facade.DeleteResume(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
