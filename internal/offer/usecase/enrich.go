package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"moving-offer-service/internal/model"
	"moving-offer-service/internal/offer"
	"moving-offer-service/pkg/gemini"
)

const (
	enrichTemperature = 0.7
	enrichMaxTokens   = 900
)

// enrichOffer returns AI-enhanced task descriptions and an execution summary,
// or the deterministic fallback when the capability is unavailable. Never fails.
func (uc *implUseCase) enrichOffer(ctx context.Context, job offer.GenerateOfferInput, pricing model.PricingResult) model.Enrichment {
	if enriched, ok := uc.enrichWithAI(ctx, job, pricing); ok {
		return enriched
	}
	return fallbackEnrichment(job, pricing)
}

// enrichWithAI asks the model for enhanced descriptions and a summary. The
// response strings are trusted as-is; only schema violations (undecodable JSON,
// empty summary) report unavailable.
func (uc *implUseCase) enrichWithAI(ctx context.Context, job offer.GenerateOfferInput, pricing model.PricingResult) (model.Enrichment, bool) {
	if uc.llm == nil {
		return model.Enrichment{}, false
	}

	prompt := gemini.BuildEnrichmentPrompt(
		renderDetailsBlock(job),
		renderTasksBlock(pricing.Tasks),
		fmt.Sprintf("%d %s", pricing.TotalPrice, pricing.Currency),
	)

	text, err := uc.llm.Complete(ctx, gemini.MovingAssistantSystemPrompt, prompt, enrichTemperature, enrichMaxTokens)
	if err != nil {
		uc.l.Warnf(ctx, "internal.offer.usecase.enrichWithAI: LLM request failed: %v", err)
		return model.Enrichment{}, false
	}

	var parsed model.Enrichment
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), &parsed); err != nil {
		uc.l.Warnf(ctx, "internal.offer.usecase.enrichWithAI: failed to parse LLM JSON response: %v", err)
		return model.Enrichment{}, false
	}

	if strings.TrimSpace(parsed.ExecutionSummary) == "" {
		uc.l.Warnf(ctx, "internal.offer.usecase.enrichWithAI: empty executionSummary in LLM response")
		return model.Enrichment{}, false
	}

	return parsed, true
}

// fallbackEnrichment copies the priced tasks unchanged and templates the
// execution summary from the job parameters and the total price.
func fallbackEnrichment(job offer.GenerateOfferInput, pricing model.PricingResult) model.Enrichment {
	enhanced := make([]model.EnhancedTask, 0, len(pricing.Tasks))
	for _, t := range pricing.Tasks {
		enhanced = append(enhanced, model.EnhancedTask{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
		})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Moving service for a %s-room apartment from %s to %s (%s km). ",
		formatNumber(job.Rooms), job.AddressFrom, job.AddressTo, formatNumber(pricing.Distance.Km))

	sb.WriteString("Our team will handle packing, transport")
	if !job.HasLift {
		sb.WriteString(" (manual carrying, no elevator)")
	}
	if job.IncludeAssembly {
		sb.WriteString(" and furniture assembly")
	}
	sb.WriteString(". ")

	if job.ExpressService {
		sb.WriteString("Express service selected — priority scheduling guaranteed. ")
	}

	fmt.Fprintf(&sb, "Estimated total: %d %s.", pricing.TotalPrice, pricing.Currency)

	return model.Enrichment{
		EnhancedTasks:    enhanced,
		ExecutionSummary: sb.String(),
	}
}
