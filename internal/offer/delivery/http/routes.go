package http

import (
	"github.com/gin-gonic/gin"

	"moving-offer-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The route keeps
// the path the form client already uses, so no version prefix.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/generate-offer",
		mw.RequestID(),
		mw.RateLimit(),
		mw.Recovery(msgGenerateOfferFailed),
		h.GenerateOffer,
	)
}
