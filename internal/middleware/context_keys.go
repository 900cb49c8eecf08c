package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated administrator's name in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated administrator from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok
	}
	// check in the request context as well
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
		return userID, true
	}
	return "", false
}
