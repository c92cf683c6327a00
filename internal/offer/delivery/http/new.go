package http

import (
	"github.com/gin-gonic/gin"

	"moving-offer-service/internal/offer"
	pkgLog "moving-offer-service/pkg/log"
)

// Handler is the public interface for the offer HTTP delivery layer.
type Handler interface {
	GenerateOffer(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc offer.UseCase
}

// New creates a new HTTP handler for the offer domain.
func New(l pkgLog.Logger, uc offer.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
