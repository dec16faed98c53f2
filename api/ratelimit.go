package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jusconnect/jusconnect-api/ratelimit"
)

// rateLimitByActor limits the lifecycle commands of each authenticated actor
func (s *Server) rateLimitByActor() gin.HandlerFunc {
	return s.rateLimit(func(c *gin.Context) string {
		actor := actorOf(c)
		return fmt.Sprintf("actor:%s:%d", actor.Role(), actor.ActorID())
	})
}

// rateLimitByIP limits anonymous calls of each client address
func (s *Server) rateLimitByIP() gin.HandlerFunc {
	return s.rateLimit(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

func (s *Server) rateLimit(key func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter == nil {
			c.Next()
			return
		}

		d := s.limiter.Allow(key(c))
		setRateLimitHeaders(c, d)

		if !d.Allowed {
			abortWithEncoding(c, http.StatusTooManyRequests, errorTooManyRequests)
			return
		}

		c.Next()
	}
}

func setRateLimitHeaders(c *gin.Context, d ratelimit.Decision) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
}
