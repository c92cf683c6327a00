package offer

import (
	"context"

	"moving-offer-service/internal/model"
)

// UseCase defines the business logic interface for the offer domain.
type UseCase interface {
	// GenerateOffer resolves the distance (AI estimate, else local), prices the
	// job, enriches task descriptions and the execution summary (AI, else
	// fallback) and returns the merged offer document.
	GenerateOffer(ctx context.Context, input GenerateOfferInput) (model.Offer, error)
}
