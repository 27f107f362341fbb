package ratelimit

import (
	"github.com/orgball2608/mini-insta/pkg/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(cfg *config.Config) *InMemoryLimiter {
		return NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
	},
	fx.As(new(Limiter)),
)
