package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context. emailKey holds the authenticated user's email.
const (
	userIDKey = contextKey("userID")
	emailKey  = contextKey("email")
)

// GetUserIDFromContext retrieves the authenticated user ID set by
// AuthMiddleware. It returns the user ID and a boolean indicating if it was
// found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(int64)
	return userID, ok
}

// GetEmailFromContext retrieves the authenticated user's email set by
// AuthMiddleware.
func GetEmailFromContext(c *gin.Context) (string, bool) {
	email, ok := c.Request.Context().Value(emailKey).(string)
	return email, ok
}
