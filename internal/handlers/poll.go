package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spread/internal/middleware"
	"spread/internal/services"
	"spread/internal/utils"
)

type PollHandler struct {
	facade *services.Facade
}

func NewPollHandler(f *services.Facade) *PollHandler {
	return &PollHandler{facade: f}
}

func (h *PollHandler) Create(c *gin.Context) {
	var in struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
	}
	if !bindJSON(c, &in) {
		return
	}
	poll, err := h.facade.CreatePoll(c.Request.Context(), middleware.ActorID(c), in.Question, in.Options)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, poll)
}

// Vote casts or replaces the actor's vote.
func (h *PollHandler) Vote(c *gin.Context) {
	var in struct {
		OptionID string `json:"option_id"`
	}
	if !bindJSON(c, &in) {
		return
	}
	pollID := utils.StringToUint(c.Param("id"))
	poll, err := h.facade.CastVote(c.Request.Context(), pollID, middleware.ActorID(c), in.OptionID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, poll)
}

func (h *PollHandler) Retract(c *gin.Context) {
	pollID := utils.StringToUint(c.Param("id"))
	changed, err := h.facade.RetractVote(c.Request.Context(), pollID, middleware.ActorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func (h *PollHandler) Results(c *gin.Context) {
	pollID := utils.StringToUint(c.Param("id"))
	poll, tally, err := h.facade.PollResults(c.Request.Context(), pollID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"poll": poll, "tally": tally})
}
