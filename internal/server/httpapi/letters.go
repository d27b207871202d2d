package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Algo-jtx/SoulSpace/internal/server/services"
)

const letterNotFoundMessage = "Letter not found or unauthorized."

// LetterHandler serves the /letters resource.
type LetterHandler struct {
	letters *services.LetterService
}

func NewLetterHandler(letters *services.LetterService) *LetterHandler {
	return &LetterHandler{letters: letters}
}

// pathID parses the :id path segment. A non-numeric id can never name a
// resource, so it renders the same 404 as a missing one.
func pathID(c *gin.Context, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusNotFound, notFoundMsg)
		return 0, false
	}
	return id, true
}

func (h *LetterHandler) List(c *gin.Context) {
	letters, err := h.letters.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		renderError(c, err, letterNotFoundMessage, "Failed to fetch letters.")
		return
	}
	c.JSON(http.StatusOK, letters)
}

type createLetterRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *LetterHandler) Create(c *gin.Context) {
	var req createLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(c, http.StatusBadRequest, "Title and content are required for a letter.")
		return
	}
	letter, err := h.letters.Create(c.Request.Context(), currentUserID(c), req.Title, req.Content)
	if err != nil {
		renderError(c, err, letterNotFoundMessage, "Failed to create letter.")
		return
	}
	c.JSON(http.StatusCreated, letter)
}

func (h *LetterHandler) Get(c *gin.Context) {
	id, ok := pathID(c, letterNotFoundMessage)
	if !ok {
		return
	}
	letter, err := h.letters.Get(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		renderError(c, err, letterNotFoundMessage, "Failed to fetch letter.")
		return
	}
	c.JSON(http.StatusOK, letter)
}

type updateLetterRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *LetterHandler) Update(c *gin.Context) {
	id, ok := pathID(c, letterNotFoundMessage)
	if !ok {
		return
	}
	var req updateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	letter, err := h.letters.Update(c.Request.Context(), id, currentUserID(c), services.LetterPatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		renderError(c, err, letterNotFoundMessage, "Failed to update letter.")
		return
	}
	c.JSON(http.StatusOK, letter)
}

func (h *LetterHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, letterNotFoundMessage)
	if !ok {
		return
	}
	if err := h.letters.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		renderError(c, err, letterNotFoundMessage, "Failed to delete letter.")
		return
	}
	c.Status(http.StatusNoContent)
}
