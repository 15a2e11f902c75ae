package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const clientIDKey = "clientId"

// AnonymousClientID is assigned when a request carries no client header.
const AnonymousClientID = "anonymous"

// Identity resolves the caller from the X-Client-Id header and stores it
// in context. The advisor has no accounts; the header scopes evaluation
// history and rate limits per caller, and absent callers share the
// anonymous identity.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := strings.TrimSpace(c.GetHeader("X-Client-Id"))
		if clientID == "" {
			clientID = AnonymousClientID
		}
		c.Set(clientIDKey, clientID)
		c.Next()
	}
}

// ClientIDFromContext fetches the client ID set by the Identity middleware.
func ClientIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(clientIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
