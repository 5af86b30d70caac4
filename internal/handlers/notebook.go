package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spread/internal/middleware"
	"spread/internal/services"
	"spread/internal/utils"
)

type NotebookHandler struct {
	facade *services.Facade
}

func NewNotebookHandler(f *services.Facade) *NotebookHandler {
	return &NotebookHandler{facade: f}
}

func (h *NotebookHandler) List(c *gin.Context) {
	books, err := h.facade.ListNotebooks(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (h *NotebookHandler) Create(c *gin.Context) {
	var in services.NotebookInput
	if !bindJSON(c, &in) {
		return
	}
	nb, err := h.facade.CreateNotebook(c.Request.Context(), middleware.ActorID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, nb)
}

func (h *NotebookHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("notebookId"))
	view, err := h.facade.GetNotebook(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *NotebookHandler) Update(c *gin.Context) {
	var in services.NotebookInput
	if !bindJSON(c, &in) {
		return
	}
	id := utils.StringToUint(c.Param("notebookId"))
	nb, err := h.facade.UpdateNotebook(c.Request.Context(), middleware.ActorID(c), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nb)
}

func (h *NotebookHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("notebookId"))
	if err := h.facade.DeleteNotebook(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *NotebookHandler) CreateSection(c *gin.Context) {
	var in services.SectionInput
	if !bindJSON(c, &in) {
		return
	}
	notebookID := utils.StringToUint(c.Param("notebookId"))
	section, err := h.facade.CreateSection(c.Request.Context(), middleware.ActorID(c), notebookID, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (h *NotebookHandler) SectionDetail(c *gin.Context) {
	notebookID := utils.StringToUint(c.Param("notebookId"))
	sectionID := utils.StringToUint(c.Param("sectionId"))
	view, err := h.facade.GetSection(c.Request.Context(), notebookID, sectionID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *NotebookHandler) DeleteSection(c *gin.Context) {
	notebookID := utils.StringToUint(c.Param("notebookId"))
	sectionID := utils.StringToUint(c.Param("sectionId"))
	err := h.facade.DeleteSection(c.Request.Context(), middleware.ActorID(c), notebookID, sectionID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CreateNote validates the notebook/section chain named in the URL
// before the note is written.
func (h *NotebookHandler) CreateNote(c *gin.Context) {
	var in services.NoteInput
	if !bindJSON(c, &in) {
		return
	}
	notebookID := utils.StringToUint(c.Param("notebookId"))
	sectionID := utils.StringToUint(c.Param("sectionId"))
	note, err := h.facade.CreateNote(c.Request.Context(), middleware.ActorID(c), notebookID, sectionID, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NotebookHandler) UpdateNote(c *gin.Context) {
	var in services.NoteInput
	if !bindJSON(c, &in) {
		return
	}
	noteID := utils.StringToUint(c.Param("noteId"))
	note, err := h.facade.UpdateNote(c.Request.Context(), middleware.ActorID(c), noteID, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NotebookHandler) DeleteNote(c *gin.Context) {
	noteID := utils.StringToUint(c.Param("noteId"))
	if err := h.facade.DeleteNote(c.Request.Context(), middleware.ActorID(c), noteID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
