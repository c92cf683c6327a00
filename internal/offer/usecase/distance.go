package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"moving-offer-service/internal/model"
	"moving-offer-service/pkg/gemini"
	"moving-offer-service/pkg/geodist"
)

const (
	distanceTemperature = 0.3
	distanceMaxTokens   = 200
)

// aiDistance is the strict schema expected from the distance capability.
type aiDistance struct {
	Km          float64 `json:"km"`
	Explanation string  `json:"explanation"`
}

// resolveDistance returns the distance estimate for the job. The AI estimate
// wins when available and valid; otherwise the local estimator is used. Never
// fails.
func (uc *implUseCase) resolveDistance(ctx context.Context, addressFrom, addressTo string) model.DistanceEstimate {
	key := distanceCacheKey(addressFrom, addressTo)
	if est, ok := uc.distCache.Get(key); ok {
		return est
	}

	if est, ok := uc.estimateDistanceWithAI(ctx, addressFrom, addressTo); ok {
		uc.distCache.Add(key, est)
		return est
	}

	return model.DistanceEstimate{
		Km:     geodist.EstimateKm(addressFrom, addressTo),
		Source: model.DistanceSourceLocal,
		From:   addressFrom,
		To:     addressTo,
	}
}

// estimateDistanceWithAI asks the model for a driving distance. Any failure
// (no client, transport error, malformed JSON, non-positive km) reports
// unavailable; the caller falls back to the local estimator.
func (uc *implUseCase) estimateDistanceWithAI(ctx context.Context, addressFrom, addressTo string) (model.DistanceEstimate, bool) {
	if uc.llm == nil {
		return model.DistanceEstimate{}, false
	}

	prompt := gemini.BuildDistancePrompt(addressFrom, addressTo)
	text, err := uc.llm.Complete(ctx, gemini.MovingAssistantSystemPrompt, prompt, distanceTemperature, distanceMaxTokens)
	if err != nil {
		uc.l.Warnf(ctx, "internal.offer.usecase.estimateDistanceWithAI: LLM request failed: %v", err)
		return model.DistanceEstimate{}, false
	}

	var parsed aiDistance
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), &parsed); err != nil {
		uc.l.Warnf(ctx, "internal.offer.usecase.estimateDistanceWithAI: failed to parse LLM JSON response: %v", err)
		return model.DistanceEstimate{}, false
	}

	if parsed.Km <= 0 {
		uc.l.Warnf(ctx, "internal.offer.usecase.estimateDistanceWithAI: non-positive km %v in LLM response", parsed.Km)
		return model.DistanceEstimate{}, false
	}

	return model.DistanceEstimate{
		Km:     parsed.Km,
		Source: model.DistanceSourceAI,
		From:   addressFrom,
		To:     addressTo,
	}, true
}

func distanceCacheKey(addressFrom, addressTo string) string {
	return strings.ToLower(addressFrom) + "|" + strings.ToLower(addressTo)
}
