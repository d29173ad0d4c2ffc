package middleware

import (
	"freezer-inventory/config"
	"freezer-inventory/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the shared middleware set. A non-positive request rate disables
// rate limiting.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
