package http

import (
	"github.com/gin-gonic/gin"

	"moving-offer-service/pkg/response"
)

// GenerateOffer godoc
// @Summary     Generate a moving offer
// @Description Validates the job parameters, estimates the distance, prices the move and returns the itemized offer with an execution summary.
// @Tags        Offer
// @Accept      json
// @Produce     json
// @Param       body body generateOfferReq true "Moving job parameters"
// @Success     200  {object} model.Offer
// @Failure     400  {object} response.ErrResp "Validation failed"
// @Failure     500  {object} response.ErrResp "Failed to generate offer"
// @Router      /generate-offer [POST]
func (h *handler) GenerateOffer(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateOfferReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.offer.delivery.http.GenerateOffer: bind failed: %v", err)
		response.ValidationFailed(c, []string{msgBodyInvalid})
		return
	}

	if details := req.validate(); len(details) > 0 {
		response.ValidationFailed(c, details)
		return
	}

	output, err := h.uc.GenerateOffer(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.offer.delivery.http.GenerateOffer: uc.GenerateOffer: %v", err)
		response.InternalError(c, msgGenerateOfferFailed)
		return
	}

	response.OK(c, output)
}
