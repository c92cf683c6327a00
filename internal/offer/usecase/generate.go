package usecase

import (
	"context"

	"moving-offer-service/internal/model"
	"moving-offer-service/internal/offer"
)

// GenerateOffer builds the complete offer for a validated job. The stages are
// strictly ordered: pricing needs the resolved distance and enrichment needs
// the priced task list. Each AI stage is best-effort with a local fallback, so
// this never fails for validated input.
func (uc *implUseCase) GenerateOffer(ctx context.Context, input offer.GenerateOfferInput) (model.Offer, error) {
	distance := uc.resolveDistance(ctx, input.AddressFrom, input.AddressTo)

	pricing := calculatePricing(input, distance)

	enrichment := uc.enrichOffer(ctx, input, pricing)

	return assembleOffer(input, pricing, enrichment), nil
}

// assembleOffer merges the pricing result with the enrichment. Only task
// descriptions may be substituted, matched by id; names and prices always come
// from the pricing engine. Unmatched tasks keep their original description.
func assembleOffer(job offer.GenerateOfferInput, pricing model.PricingResult, enrichment model.Enrichment) model.Offer {
	enhancedByID := make(map[int]model.EnhancedTask, len(enrichment.EnhancedTasks))
	for _, e := range enrichment.EnhancedTasks {
		enhancedByID[e.ID] = e
	}

	tasks := make([]model.Task, 0, len(pricing.Tasks))
	for _, t := range pricing.Tasks {
		if e, ok := enhancedByID[t.ID]; ok && e.Description != "" {
			t.Description = e.Description
		}
		tasks = append(tasks, t)
	}

	return model.Offer{
		Service: "Moving",
		Details: model.OfferDetails{
			Rooms:           job.Rooms,
			From:            job.AddressFrom,
			To:              job.AddressTo,
			DistanceKm:      pricing.Distance.Km,
			DistanceSource:  pricing.Distance.Source,
			HasLift:         job.HasLift,
			Floor:           job.Floor,
			IncludeAssembly: job.IncludeAssembly,
			ExpressService:  job.ExpressService,
			HeavyItems:      job.HeavyItems,
		},
		Tasks: tasks,
		Pricing: model.OfferPricing{
			Subtotal:       pricing.Subtotal,
			ExpressService: pricing.ExpressService,
			TotalPrice:     pricing.TotalPrice,
			Currency:       pricing.Currency,
		},
		ExecutionSummary: enrichment.ExecutionSummary,
	}
}
