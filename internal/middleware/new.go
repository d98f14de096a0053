package middleware

import (
	"voice-task-tracker/pkg/log"
)

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	allowedOrigins []string
}

// Config holds the settings shared by the HTTP middlewares.
type Config struct {
	RateLimitPerMin int
	AllowedOrigins  []string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		limiter:        newRateLimiter(cfg.RateLimitPerMin),
		allowedOrigins: cfg.AllowedOrigins,
	}
}
