package middleware

import "github.com/gin-gonic/gin"

// ownerIDKey is the key used to store the authenticated session subject in
// the request context.
const ownerIDKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the authenticated session subject from the
// Gin context. It returns the subject and a boolean indicating if it was found.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	ownerVal := c.Request.Context().Value(ownerIDKey)
	if ownerVal == nil {
		return "", false
	}
	ownerID, ok := ownerVal.(string)
	if !ok {
		return "", false
	}
	return ownerID, true
}
