package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/logging"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
	"github.com/Algo-jtx/SoulSpace/internal/server/services"
)

var testSecret = []byte("test-secret")

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repos := repomanager.NewInMemoryManager()
	svcs := Services{
		Users:    services.NewUserService(repos),
		Letters:  services.NewLetterService(repos),
		Capsules: services.NewCapsuleService(repos),
		Notes:    services.NewNoteService(repos),
		Wellness: services.NewWellnessService(repos),
	}
	return NewRouter(svcs, testSecret, time.Hour, logging.NewNop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorsBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Errors string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Errors
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == common.SessionCookieName {
			return ck
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func signupUser(t *testing.T, r *gin.Engine, username string) *http.Cookie {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/signup", gin.H{
		"username":              username,
		"email":                 username + "@example.com",
		"password":              "secret1",
		"password_confirmation": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)

	t.Run("check_session without cookie", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/check_session", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "No active session.", errorsBody(t, w))
	})

	cookie := signupUser(t, r, "maya")

	t.Run("check_session with cookie", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/check_session", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		var user struct {
			Username string `json:"username"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		require.Equal(t, "maya", user.Username)
	})

	t.Run("duplicate signup", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/signup", gin.H{
			"username":              "maya",
			"email":                 "other@example.com",
			"password":              "secret1",
			"password_confirmation": "secret1",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "Username already taken.", errorsBody(t, w))
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", gin.H{
			"identifier": "maya", "password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "Invalid identifier or password.", errorsBody(t, w))
	})

	t.Run("login by email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", gin.H{
			"identifier": "maya@example.com", "password": "secret1",
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("logout", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/logout", nil, cookie)
		require.Equal(t, http.StatusNoContent, w.Code)
		cleared := sessionCookie(t, w)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})

	t.Run("garbage cookie is no active session", func(t *testing.T) {
		bad := &http.Cookie{Name: common.SessionCookieName, Value: "garbage"}
		w := doJSON(t, r, http.MethodGet, "/check_session", nil, bad)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "No active session.", errorsBody(t, w))
	})
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/letters", "/time_capsules", "/user_notes", "/soul_notes/random", "/loop_breaker/prompt", "/breath_ground"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
		require.Equal(t, "Unauthorized: Please log in to access this resource.", errorsBody(t, w), path)
	}
}

func TestLettersEndpoints(t *testing.T) {
	r := newTestRouter(t)
	cookie := signupUser(t, r, "writer")

	w := doJSON(t, r, http.MethodPost, "/letters", gin.H{"title": "hello", "content": "world"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var letter struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &letter))
	require.NotZero(t, letter.ID)

	w = doJSON(t, r, http.MethodPost, "/letters", gin.H{"title": "", "content": "x"}, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Title and content are required for a letter.", errorsBody(t, w))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/letters/%d", letter.ID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/letters/%d", letter.ID), gin.H{"title": "renamed"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &letter))
	require.Equal(t, "renamed", letter.Title)

	// A different account cannot see it.
	other := signupUser(t, r, "reader")
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/letters/%d", letter.ID), nil, other)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Letter not found or unauthorized.", errorsBody(t, w))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/letters/%d", letter.ID), nil, cookie)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/letters/%d", letter.ID), nil, cookie)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/letters/not-a-number", nil, cookie)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCapsuleEndpoints(t *testing.T) {
	r := newTestRouter(t)
	cookie := signupUser(t, r, "sealer")

	w := doJSON(t, r, http.MethodPost, "/time_capsules", gin.H{
		"message":   "open later",
		"open_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/time_capsules", gin.H{
		"message":   "too late",
		"open_date": time.Now().Add(-time.Hour).Format(time.RFC3339),
	}, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Open date must be in the future.", errorsBody(t, w))

	w = doJSON(t, r, http.MethodGet, "/time_capsules", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var capsules []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &capsules))
	require.Len(t, capsules, 1)
}

func TestNoteEndpoints(t *testing.T) {
	r := newTestRouter(t)
	cookie := signupUser(t, r, "noter")

	w := doJSON(t, r, http.MethodPost, "/user_notes", gin.H{"content": ""}, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Note content cannot be empty.", errorsBody(t, w))

	w = doJSON(t, r, http.MethodPost, "/user_notes", gin.H{"content": "breathe"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var note struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/user_notes/%d", note.ID), gin.H{"content": "breathe deeply"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestWellnessEndpoints(t *testing.T) {
	r := newTestRouter(t)
	cookie := signupUser(t, r, "wanderer")

	w := doJSON(t, r, http.MethodGet, "/soul_notes/random", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var soul struct {
		Message  string `json:"message"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &soul))
	require.NotEmpty(t, soul.Message)

	w = doJSON(t, r, http.MethodGet, "/loop_breaker/prompt", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var prompt struct {
		Prompt string `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prompt))
	require.NotEmpty(t, prompt.Prompt)

	w = doJSON(t, r, http.MethodGet, "/breath_ground", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var techniques struct {
		Techniques []struct {
			Name         string `json:"name"`
			Instructions string `json:"instructions"`
			Duration     string `json:"duration"`
		} `json:"techniques"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &techniques))
	require.NotEmpty(t, techniques.Techniques)
}

func TestRootAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "SoulSpace API")

	w = doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
