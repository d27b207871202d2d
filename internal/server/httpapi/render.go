// Package httpapi exposes the SoulSpace JSON API over HTTP. Every failure
// body has the shape {"errors": <message>}, which the client relies on.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Algo-jtx/SoulSpace/internal/common"
)

// InternalErrorMessage is the body of any 500 produced by a panic.
const InternalErrorMessage = "An internal server error occurred."

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"errors": message})
}

// renderError maps a service error to an HTTP response. notFoundMsg is the
// resource-specific 404 body ("Letter not found or unauthorized."),
// fallback the action-specific 500 body ("Failed to fetch letters.").
func renderError(c *gin.Context, err error, notFoundMsg, fallback string) {
	if ve, ok := common.AsValidation(err); ok {
		respondError(c, http.StatusBadRequest, ve.Message)
		return
	}
	if errors.Is(err, common.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	respondError(c, http.StatusInternalServerError, fallback)
}
