package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"io.winapps.portfolio/internal/auth"
)

const (
	// AdminUID is stored under "uid" for authenticated admin requests.
	AdminUID = "admin"

	SessionIDKey = "session_id"
	TokenKey     = "session_token"
)

var (
	errMissingHeader = errors.New("Authorization header is required")
	errBadScheme     = errors.New("Authorization header must start with 'Bearer '")
	errEmptyToken    = errors.New("Token is required")
)

// TokenVerifier resolves a bearer token to a live session id. It reports
// rejected tokens with auth.ErrInvalidToken or auth.ErrSessionNotFound.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errMissingHeader
	}
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", errBadScheme
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

// AdminAuthMiddleware lets a request through only with a bearer token whose
// admin session is still open.
func AdminAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := BearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		sessionID, err := verifier.Verify(c.Request.Context(), token)
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrSessionNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify session"})
			return
		}

		c.Set("uid", AdminUID)
		c.Set(SessionIDKey, sessionID)
		c.Set(TokenKey, token)
		c.Next()
	}
}
