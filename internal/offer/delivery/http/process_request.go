package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateOfferReq binds the generate-offer request body.
func (h *handler) processGenerateOfferReq(c *gin.Context) (generateOfferReq, error) {
	var req generateOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
