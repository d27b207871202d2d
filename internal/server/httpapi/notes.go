package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Algo-jtx/SoulSpace/internal/server/services"
)

const noteNotFoundMessage = "Note not found or unauthorized."

// NoteHandler serves the /user_notes resource.
type NoteHandler struct {
	notes *services.NoteService
}

func NewNoteHandler(notes *services.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		renderError(c, err, noteNotFoundMessage, "Failed to fetch notes.")
		return
	}
	c.JSON(http.StatusOK, notes)
}

type createNoteRequest struct {
	Content string `json:"content"`
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	note, err := h.notes.Create(c.Request.Context(), currentUserID(c), req.Content)
	if err != nil {
		renderError(c, err, noteNotFoundMessage, "Failed to create note.")
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) Get(c *gin.Context) {
	id, ok := pathID(c, noteNotFoundMessage)
	if !ok {
		return
	}
	note, err := h.notes.Get(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		renderError(c, err, noteNotFoundMessage, "Failed to fetch note.")
		return
	}
	c.JSON(http.StatusOK, note)
}

type updateNoteRequest struct {
	Content *string `json:"content"`
}

func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := pathID(c, noteNotFoundMessage)
	if !ok {
		return
	}
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	note, err := h.notes.Update(c.Request.Context(), id, currentUserID(c), services.NotePatch{
		Content: req.Content,
	})
	if err != nil {
		renderError(c, err, noteNotFoundMessage, "Failed to update note.")
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, noteNotFoundMessage)
	if !ok {
		return
	}
	if err := h.notes.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		renderError(c, err, noteNotFoundMessage, "Failed to delete note.")
		return
	}
	c.Status(http.StatusNoContent)
}
