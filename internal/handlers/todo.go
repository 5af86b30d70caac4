package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spread/internal/middleware"
	"spread/internal/services"
	"spread/internal/utils"
)

type TodoHandler struct {
	facade *services.Facade
}

func NewTodoHandler(f *services.Facade) *TodoHandler {
	return &TodoHandler{facade: f}
}

func (h *TodoHandler) List(c *gin.Context) {
	lists, err := h.facade.ListTodoLists(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *TodoHandler) Create(c *gin.Context) {
	var in services.TodoListInput
	if !bindJSON(c, &in) {
		return
	}
	list, err := h.facade.CreateTodoList(c.Request.Context(), middleware.ActorID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (h *TodoHandler) AddItem(c *gin.Context) {
	var in struct {
		Name     string `json:"name"`
		Priority int    `json:"priority"`
	}
	if !bindJSON(c, &in) {
		return
	}
	listID := utils.StringToUint(c.Param("id"))
	list, err := h.facade.AddTodo(c.Request.Context(), middleware.ActorID(c), listID, in.Name, in.Priority)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// CheckOff marks one item complete, addressed by its sub-identity.
func (h *TodoHandler) CheckOff(c *gin.Context) {
	h.toggle(c, true)
}

// Uncheck clears the complete flag again.
func (h *TodoHandler) Uncheck(c *gin.Context) {
	h.toggle(c, false)
}

func (h *TodoHandler) toggle(c *gin.Context, complete bool) {
	listID := utils.StringToUint(c.Param("id"))
	todoID := c.Param("todoId")
	list, err := h.facade.ToggleTodo(c.Request.Context(), middleware.ActorID(c), listID, todoID, complete)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TodoHandler) RemoveItem(c *gin.Context) {
	listID := utils.StringToUint(c.Param("id"))
	todoID := c.Param("todoId")
	list, err := h.facade.RemoveTodo(c.Request.Context(), middleware.ActorID(c), listID, todoID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	listID := utils.StringToUint(c.Param("id"))
	if err := h.facade.DeleteTodoList(c.Request.Context(), middleware.ActorID(c), listID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
