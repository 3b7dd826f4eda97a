package middleware

import (
	"time"

	"task-suggestion/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	AdminToken     string        // empty disables the admin check
	RequestsPerMin int           // per client IP
	RequestTimeout time.Duration // zero disables the deadline
}

type Middleware struct {
	l          log.Logger
	limiter    *rateLimiter
	adminToken string
	timeout    time.Duration
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:          l,
		limiter:    newRateLimiter(cfg.RequestsPerMin),
		adminToken: cfg.AdminToken,
		timeout:    cfg.RequestTimeout,
	}
}
