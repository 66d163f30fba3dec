package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const guestIDKey = "guestId"

// GuestIdentity stores the caller's guest identity from the X-Guest-Id
// header in context. Identity is optional; the analysis endpoint serves
// anonymous property apps too, so a missing header is not rejected.
func GuestIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID != "" {
			c.Set(guestIDKey, guestID)
		}
		c.Next()
	}
}

// GuestIDFromContext fetches the guest ID set by GuestIdentity.
func GuestIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(guestIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
