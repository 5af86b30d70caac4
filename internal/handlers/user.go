package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spread/internal/middleware"
	"spread/internal/services"
	"spread/internal/utils"
)

type UserHandler struct {
	facade *services.Facade
}

func NewUserHandler(f *services.Facade) *UserHandler {
	return &UserHandler{facade: f}
}

// Profile serves a user's public profile with friends, posts and
// visible reposts.
func (h *UserHandler) Profile(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	cacheKey := fmt.Sprintf("user:profile:%d", id)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if view, ok := cached.(*services.ProfileView); ok {
			c.JSON(http.StatusOK, view)
			return
		}
	}

	view, err := h.facade.Profile(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.GetCache().Set(cacheKey, view, 30*time.Second)
	c.JSON(http.StatusOK, view)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var in services.ProfileUpdate
	if !bindJSON(c, &in) {
		return
	}
	actor := middleware.ActorID(c)
	user, err := h.facade.UpdateProfile(c.Request.Context(), actor, in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.GetCache().Delete(fmt.Sprintf("user:profile:%d", actor))
	c.JSON(http.StatusOK, user)
}

// AddFriend befriends the target user; the relation becomes mutual.
func (h *UserHandler) AddFriend(c *gin.Context) {
	actor := middleware.ActorID(c)
	friendID := utils.StringToUint(c.Param("id"))

	changed, err := h.facade.Befriend(c.Request.Context(), actor, friendID)
	if err != nil {
		fail(c, err)
		return
	}
	utils.GetCache().Delete(fmt.Sprintf("user:profile:%d", actor))
	utils.GetCache().Delete(fmt.Sprintf("user:profile:%d", friendID))
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func (h *UserHandler) RemoveFriend(c *gin.Context) {
	actor := middleware.ActorID(c)
	friendID := utils.StringToUint(c.Param("id"))

	changed, err := h.facade.Unfriend(c.Request.Context(), actor, friendID)
	if err != nil {
		fail(c, err)
		return
	}
	utils.GetCache().Delete(fmt.Sprintf("user:profile:%d", actor))
	utils.GetCache().Delete(fmt.Sprintf("user:profile:%d", friendID))
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

// Delete removes the actor's own account. Posts and comments survive
// unless content cascade is configured; friend references to the
// account never do.
func (h *UserHandler) Delete(c *gin.Context) {
	actor := middleware.ActorID(c)
	if err := h.facade.DeleteUser(c.Request.Context(), actor); err != nil {
		fail(c, err)
		return
	}
	utils.GetCache().Delete(fmt.Sprintf("user:profile:%d", actor))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Repost sends content to another user's profile.
func (h *UserHandler) Repost(c *gin.Context) {
	var in struct {
		Body    string `json:"body"`
		Visible *bool  `json:"visible"`
	}
	if !bindJSON(c, &in) {
		return
	}
	visible := true
	if in.Visible != nil {
		visible = *in.Visible
	}
	actor := middleware.ActorID(c)
	toID := utils.StringToUint(c.Param("id"))

	repost, err := h.facade.Repost(c.Request.Context(), actor, toID, in.Body, visible)
	if err != nil {
		fail(c, err)
		return
	}
	utils.GetCache().Delete(fmt.Sprintf("user:profile:%d", toID))
	c.JSON(http.StatusCreated, repost)
}
