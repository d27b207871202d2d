package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Algo-jtx/SoulSpace/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := New(srv.URL, logging.NewNop())
	require.NoError(t, err)
	return client
}

func TestCheckSession(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/check_session", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":1,"username":"a","email":"a@x.com"}`))
		}))
		user, err := client.CheckSession(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), user.ID)
		require.Equal(t, "a", user.Username)
		require.Equal(t, "a@x.com", user.Email)
	})

	t.Run("distinguished 401", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":"No active session."}`))
		}))
		_, err := client.CheckSession(ctx)
		require.ErrorIs(t, err, ErrNoActiveSession)
	})

	t.Run("other 401 is a real error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":"Something else."}`))
		}))
		_, err := client.CheckSession(ctx)
		require.NotErrorIs(t, err, ErrNoActiveSession)
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, []string{"Something else."}, apiErr.Messages)
	})

	t.Run("500", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		_, err := client.CheckSession(ctx)
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		require.Equal(t, "server responded with status 500", apiErr.Error())
	})
}

func TestSessionCookieRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "soulspace_session", Value: "tok", Path: "/"})
			w.Write([]byte(`{"id":7,"username":"maya"}`))
		case "/letters":
			ck, err := r.Cookie("soulspace_session")
			if err != nil || ck.Value != "tok" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"errors":"Unauthorized: Please log in to access this resource."}`))
				return
			}
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	// Before login the protected route rejects us.
	_, err := client.Letters().List(ctx)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// The cookie from login rides along afterwards.
	_, err = client.Login(ctx, "maya", "secret1")
	require.NoError(t, err)
	letters, err := client.Letters().List(ctx)
	require.NoError(t, err)
	require.Empty(t, letters)
}

func TestParseErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"string", `{"errors":"one"}`, []string{"one"}},
		{"array", `{"errors":["one","two"]}`, []string{"one", "two"}},
		{"empty string", `{"errors":""}`, nil},
		{"absent", `{}`, nil},
		{"not json", `<h1>nope</h1>`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseErrorMessages([]byte(tt.body)))
		})
	}
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	client, err := New("http://127.0.0.1:1", logging.NewNop())
	require.NoError(t, err)
	_, err = client.CheckSession(context.Background())
	require.Error(t, err)
	var apiErr *Error
	require.False(t, errors.As(err, &apiErr))
}
