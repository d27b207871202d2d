package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/logging"
	"github.com/Algo-jtx/SoulSpace/internal/server/auth"
)

const contextKeyUserID = "user_id"

// currentUserID returns the user id set by RequireSession. 0 if not set.
func currentUserID(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// RequireSession rejects requests without a valid session cookie and stores
// the authenticated user id in the request context.
func RequireSession(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(common.SessionCookieName)
		if err != nil || token == "" {
			respondError(c, http.StatusUnauthorized, common.UnauthorizedMessage)
			return
		}
		userID, err := auth.UserIDFromSessionToken(token, secretKey)
		if err != nil {
			respondError(c, http.StatusUnauthorized, common.UnauthorizedMessage)
			return
		}
		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}

// RequestLogger logs each request with method, path, status and duration.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// Recovery converts panics into the standard 500 body.
func Recovery(log logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), "panic recovered", "error", recovered)
		respondError(c, http.StatusInternalServerError, InternalErrorMessage)
	})
}
