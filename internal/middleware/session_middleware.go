package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

// SessionMiddleware assigns a session id to first-time callers and echoes it
// back so the client can pin its cart/catalog state to later requests.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set("session_id", sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}
