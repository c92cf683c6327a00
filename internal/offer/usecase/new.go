package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"moving-offer-service/internal/model"
	"moving-offer-service/pkg/gemini"
	pkgLog "moving-offer-service/pkg/log"
)

const distanceCacheSize = 256

type implUseCase struct {
	l   pkgLog.Logger
	llm gemini.IGemini

	// distCache holds AI-confirmed distances per address pair so repeated quotes
	// for the same route skip the model call. Local estimates are cheap and are
	// not cached.
	distCache *lru.Cache[string, model.DistanceEstimate]
}

// New creates a new offer UseCase instance. llm may be nil, in which case both
// AI capabilities are permanently unavailable and local fallbacks are used.
func New(l pkgLog.Logger, llm gemini.IGemini) *implUseCase {
	cache, _ := lru.New[string, model.DistanceEstimate](distanceCacheSize)

	return &implUseCase{
		l:         l,
		llm:       llm,
		distCache: cache,
	}
}
