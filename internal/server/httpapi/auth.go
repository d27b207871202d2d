package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/logging"
	"github.com/Algo-jtx/SoulSpace/internal/server/auth"
	"github.com/Algo-jtx/SoulSpace/internal/server/services"
)

// AuthHandler serves signup, login, check_session and logout.
type AuthHandler struct {
	users      *services.UserService
	secretKey  []byte
	sessionTTL time.Duration
	log        logging.Logger
}

func NewAuthHandler(users *services.UserService, secretKey []byte, sessionTTL time.Duration, log logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, secretKey: secretKey, sessionTTL: sessionTTL, log: log}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, userID int64) error {
	token, err := auth.GenerateSessionToken(userID, h.secretKey, h.sessionTTL)
	if err != nil {
		return err
	}
	c.SetCookie(common.SessionCookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(common.SessionCookieName, "", -1, "/", "", false, true)
}

type signupRequest struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	user, err := h.users.Signup(c.Request.Context(), services.SignupParams{
		Username:             req.Username,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		if ve, ok := common.AsValidation(err); ok {
			respondError(c, http.StatusBadRequest, ve.Message)
			return
		}
		h.log.Error(c.Request.Context(), "signup failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to create user: An unexpected error occurred.")
		return
	}
	if err := h.setSessionCookie(c, user.ID); err != nil {
		h.log.Error(c.Request.Context(), "session token generation failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to create user: An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	user, err := h.users.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if ve, ok := common.AsValidation(err); ok {
			respondError(c, http.StatusBadRequest, ve.Message)
			return
		}
		if errors.Is(err, common.ErrUnauthorized) {
			respondError(c, http.StatusUnauthorized, "Invalid identifier or password.")
			return
		}
		h.log.Error(c.Request.Context(), "login failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Login failed: An unexpected error occurred.")
		return
	}
	if err := h.setSessionCookie(c, user.ID); err != nil {
		h.log.Error(c.Request.Context(), "session token generation failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Login failed: An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, user)
}

// CheckSession resolves the session cookie to the current user. A missing or
// unusable cookie is the ordinary logged-out state and answers with the
// NoActiveSessionMessage marker; a cookie naming a deleted account answers
// "User not found." and clears the cookie.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	token, err := c.Cookie(common.SessionCookieName)
	if err != nil || token == "" {
		respondError(c, http.StatusUnauthorized, common.NoActiveSessionMessage)
		return
	}
	userID, err := auth.UserIDFromSessionToken(token, h.secretKey)
	if err != nil {
		h.clearSessionCookie(c)
		respondError(c, http.StatusUnauthorized, common.NoActiveSessionMessage)
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			h.clearSessionCookie(c)
			respondError(c, http.StatusUnauthorized, "User not found.")
			return
		}
		h.log.Error(c.Request.Context(), "check_session failed", "error", err)
		respondError(c, http.StatusInternalServerError, InternalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}
