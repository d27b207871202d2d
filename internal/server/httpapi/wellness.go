package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/services"
)

// WellnessHandler serves soul notes, loop-breaker prompts and the
// breath-and-ground technique list.
type WellnessHandler struct {
	wellness *services.WellnessService
}

func NewWellnessHandler(wellness *services.WellnessService) *WellnessHandler {
	return &WellnessHandler{wellness: wellness}
}

func (h *WellnessHandler) RandomSoulNote(c *gin.Context) {
	note, err := h.wellness.RandomSoulNote(c.Request.Context())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			respondError(c, http.StatusNotFound, "No soul notes available.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch soul note.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": note.Message, "category": note.Category})
}

func (h *WellnessHandler) LoopPrompt(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prompt": h.wellness.LoopPrompt()})
}

func (h *WellnessHandler) Techniques(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"techniques": h.wellness.Techniques()})
}
