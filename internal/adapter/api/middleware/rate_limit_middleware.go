package middleware

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/infrastructure/ratelimit"
	"gebeya/pkg/errors"
	"gebeya/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles one named action per browser context.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if allowed, _ := m.limiter.Allow(ContextID(c), action); !allowed {
				return response.Error(c, errors.TooManyRequests("Too many attempts. Please try again shortly."))
			}
			return next(c)
		}
	}
}
