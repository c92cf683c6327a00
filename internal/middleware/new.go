package middleware

import (
	"moving-offer-service/config"
	pkgLog "moving-offer-service/pkg/log"
)

type Middleware struct {
	l   pkgLog.Logger
	cfg config.RateLimitConfig
}

func New(l pkgLog.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
