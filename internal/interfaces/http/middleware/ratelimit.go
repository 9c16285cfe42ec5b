package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"forestdash/internal/infrastructure/ratelimit"
	"forestdash/internal/shared/constants"
	"forestdash/internal/shared/logger"
	"forestdash/internal/shared/utils"
)

// WriteRateLimit limits POST and PUT requests per client IP. Reads are never
// limited. When the limiter itself fails the request is let through.
func WriteRateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut:
		default:
			c.Next()
			return
		}

		decision, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(seconds, 1)))
			utils.ErrorResponse(c, http.StatusTooManyRequests, constants.ErrMsgRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
