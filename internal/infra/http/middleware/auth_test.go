package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuth_RoundTrip(t *testing.T) {
	auth := NewAuth("test-secret")

	token, err := auth.IssueToken(42, time.Hour)
	assert.NoError(t, err)

	userID, err := auth.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAuth_ExpiredToken(t *testing.T) {
	auth := NewAuth("test-secret")

	token, err := auth.IssueToken(42, -time.Minute)
	assert.NoError(t, err)

	_, err = auth.ParseToken(token)
	assert.Error(t, err)
}

func TestAuth_WrongSecret(t *testing.T) {
	token, err := NewAuth("secret-a").IssueToken(42, time.Hour)
	assert.NoError(t, err)

	_, err = NewAuth("secret-b").ParseToken(token)
	assert.Error(t, err)
}

func TestAuth_Middleware(t *testing.T) {
	auth := NewAuth("test-secret")

	var gotUserID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		token, _ := auth.IssueToken(7, time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/api/prospects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		auth.Middleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(7), gotUserID)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/prospects", nil)
		rec := httptest.NewRecorder()

		auth.Middleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/prospects", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()

		auth.Middleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
