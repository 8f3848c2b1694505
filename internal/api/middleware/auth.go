package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/askary/studyaid-api/internal/api/shared"
	"github.com/askary/studyaid-api/internal/config"
)

// EditScope is the scope the host platform grants to callers allowed to
// use the generation endpoints.
const EditScope = "edit"

// platformClaims is the claim set of tokens issued by the host
// platform. Scopes is a space-separated list, OAuth-style.
type platformClaims struct {
	Scopes string `json:"scope"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies HS256 tokens issued by the host platform.
// This service never issues tokens; authentication and permission
// management live in the platform, and the shared secret is the only
// coupling between the two.
type AuthMiddleware struct {
	signingKey []byte
}

// NewAuthMiddleware creates an AuthMiddleware verifying tokens against
// the configured shared secret.
func NewAuthMiddleware(cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		signingKey: []byte(cfg.TokenSecret),
	}
}

// RequireEditScope validates the bearer token and rejects callers whose
// token does not carry the edit scope. The granted scopes are added to
// the request context for downstream handlers.
func (m *AuthMiddleware) RequireEditScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.parseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			} else {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		if !hasScope(claims.Scopes, EditScope) {
			shared.RespondWithError(w, r, http.StatusForbidden, "Edit permission required")
			return
		}

		ctx := context.WithValue(r.Context(), shared.ScopesContextKey, claims.Scopes)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseToken validates signature, algorithm, and time claims, returning
// the embedded platform claims.
func (m *AuthMiddleware) parseToken(tokenString string) (*platformClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&platformClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*platformClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// hasScope reports whether the space-separated scope list contains want.
func hasScope(scopes, want string) bool {
	for _, s := range strings.Fields(scopes) {
		if s == want {
			return true
		}
	}
	return false
}
