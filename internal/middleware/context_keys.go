package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	// usernameKey stores the authenticated caller's username.
	usernameKey = contextKey("username")
	// loggerCtxKey stores the request-scoped logger.
	loggerCtxKey = contextKey("logger")
)

// GetUsernameFromContext retrieves the authenticated username from the Gin context.
// It returns the username and a boolean indicating whether it was found.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(usernameKey)); exists {
		if username, ok := v.(string); ok {
			return username, true
		}
		return "", false
	}
	// check the request context as well
	if v := c.Request.Context().Value(usernameKey); v != nil {
		if username, ok := v.(string); ok {
			return username, true
		}
	}
	return "", false
}

// ContextWithUsername returns a context carrying the authenticated username.
// Exposed for tests that exercise handlers without the auth middleware.
func ContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}
