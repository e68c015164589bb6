package middleware

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"spinwheel/internal/handler/httperr"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

const purgeEvery = 1024

// RateLimit enforces a fixed-window per-IP cap on one named operation.
// Windows are tracked in-process: the cap applies per instance, which is
// enough to dampen abuse without external state.
func RateLimit(limiter *ratelimit.Limiter, operation string, limit int, interval time.Duration) gin.HandlerFunc {
	var seen atomic.Uint64

	return func(c *gin.Context) {
		if seen.Add(1)%purgeEvery == 0 {
			limiter.Purge()
		}

		result := limiter.Allow(operation+":"+c.ClientIP(), limit, interval)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.OK {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.ErrRateLimited,
				"Too many requests, please try again later", nil)
			return
		}

		c.Next()
	}
}
