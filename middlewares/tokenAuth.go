package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/BSIT-Sanchez/LGC/utils"
	"github.com/gin-gonic/gin"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenAuthMiddleware validates the session token and adds the user ID to the
// request context. The token is read from the accessToken cookie, falling back
// to the accessToken query parameter.
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("accessToken")
		if err != nil || token == "" {
			token = c.DefaultQuery("accessToken", "")
		}
		if token == "" {
			RespondError(c, "Missing access token", http.StatusUnauthorized, nil)
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			RespondError(c, "Invalid token", http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ExtractUserIDFromContext retrieves the userID from the context.
func ExtractUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return "", errors.New("user ID not found in context")
	}
	return userID, nil
}
