package middleware

import (
	"github.com/gin-gonic/gin"

	"moving-offer-service/pkg/response"
)

// Recovery converts panics into an opaque 500 with the given message. The
// panic value is logged, never surfaced to the client.
func (m Middleware) Recovery(message string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: panic recovered: %v", recovered)
		response.InternalError(c, message)
		c.Abort()
	})
}
