package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// SessionMiddleware gắn mã phiên cho mỗi request để lần theo log giữa các
// thao tác chấm công/thu chi của cùng một người dùng. Client không gửi mã
// thì cấp mã mới và trả lại qua header.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.Writer.Header().Set(sessionHeader, sessionID)
		}

		c.Set("sessionId", sessionID)

		c.Next()
	}
}
