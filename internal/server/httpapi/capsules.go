package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Algo-jtx/SoulSpace/internal/server/services"
)

const capsuleNotFoundMessage = "Time capsule not found or unauthorized."

// CapsuleHandler serves the /time_capsules resource.
type CapsuleHandler struct {
	capsules *services.CapsuleService
}

func NewCapsuleHandler(capsules *services.CapsuleService) *CapsuleHandler {
	return &CapsuleHandler{capsules: capsules}
}

func (h *CapsuleHandler) List(c *gin.Context) {
	capsules, err := h.capsules.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		renderError(c, err, capsuleNotFoundMessage, "Failed to fetch time capsules.")
		return
	}
	c.JSON(http.StatusOK, capsules)
}

type createCapsuleRequest struct {
	Message  string    `json:"message"`
	OpenDate time.Time `json:"open_date"`
}

func (h *CapsuleHandler) Create(c *gin.Context) {
	var req createCapsuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Message == "" || req.OpenDate.IsZero() {
		respondError(c, http.StatusBadRequest, "Message and open date are required for a time capsule.")
		return
	}
	capsule, err := h.capsules.Create(c.Request.Context(), currentUserID(c), req.Message, req.OpenDate)
	if err != nil {
		renderError(c, err, capsuleNotFoundMessage, "Failed to create time capsule.")
		return
	}
	c.JSON(http.StatusCreated, capsule)
}

func (h *CapsuleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, capsuleNotFoundMessage)
	if !ok {
		return
	}
	capsule, err := h.capsules.Get(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		renderError(c, err, capsuleNotFoundMessage, "Failed to fetch time capsule.")
		return
	}
	c.JSON(http.StatusOK, capsule)
}

type updateCapsuleRequest struct {
	Message  *string    `json:"message"`
	OpenDate *time.Time `json:"open_date"`
}

func (h *CapsuleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, capsuleNotFoundMessage)
	if !ok {
		return
	}
	var req updateCapsuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	capsule, err := h.capsules.Update(c.Request.Context(), id, currentUserID(c), services.CapsulePatch{
		Message:  req.Message,
		OpenDate: req.OpenDate,
	})
	if err != nil {
		renderError(c, err, capsuleNotFoundMessage, "Failed to update time capsule.")
		return
	}
	c.JSON(http.StatusOK, capsule)
}

func (h *CapsuleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, capsuleNotFoundMessage)
	if !ok {
		return
	}
	if err := h.capsules.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		renderError(c, err, capsuleNotFoundMessage, "Failed to delete time capsule.")
		return
	}
	c.Status(http.StatusNoContent)
}
