package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askary/studyaid-api/internal/config"
)

const testSecret = "test-secret-key-that-is-32-chars!!"

func mintToken(t *testing.T, secret, scopes string, expiresIn time.Duration) string {
	t.Helper()
	claims := platformClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "editor-7",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	m := NewAuthMiddleware(config.AuthConfig{TokenSecret: testSecret})

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flashcards", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	m.RequireEditScope(next).ServeHTTP(rr, req)
	return rr, reached
}

func TestRequireEditScopeAllowsEditToken(t *testing.T) {
	token := mintToken(t, testSecret, "read edit", time.Hour)

	rr, reached := runMiddleware(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, reached)
}

func TestRequireEditScopeRejections(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     func(t *testing.T) string
		expectedStatus int
	}{
		{
			name:           "missing header",
			authHeader:     func(t *testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     func(t *testing.T) string { return "Token abc" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			authHeader:     func(t *testing.T) string { return "Bearer not-a-jwt" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong signing secret",
			authHeader: func(t *testing.T) string {
				return "Bearer " + mintToken(t, "another-secret-also-32-chars-long!", "edit", time.Hour)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing edit scope",
			authHeader: func(t *testing.T) string {
				return "Bearer " + mintToken(t, testSecret, "read", time.Hour)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, reached := runMiddleware(t, tt.authHeader(t))
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.False(t, reached)
		})
	}
}

func TestRequireEditScopeExpiredToken(t *testing.T) {
	token := mintToken(t, testSecret, "edit", -time.Hour)

	rr, reached := runMiddleware(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, reached)
	assert.Contains(t, rr.Body.String(), "Token expired")
}

func TestHasScope(t *testing.T) {
	tests := []struct {
		name     string
		scopes   string
		want     string
		expected bool
	}{
		{name: "single scope", scopes: "edit", want: "edit", expected: true},
		{name: "among others", scopes: "read edit publish", want: "edit", expected: true},
		{name: "absent", scopes: "read publish", want: "edit", expected: false},
		{name: "empty list", scopes: "", want: "edit", expected: false},
		{name: "no substring match", scopes: "editor", want: "edit", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasScope(tt.scopes, tt.want))
		})
	}
}
