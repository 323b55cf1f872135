package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const adminCacheTTL = time.Minute

// AdminChecker reports whether an email belongs to an administrator.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminMiddleware must run after JWTAuthMiddleware. Role lookups are cached
// in Redis for a minute when a client is given; cache errors fall back to the store.
// Promotions through the user service clear the cached flag.
func AdminMiddleware(checker AdminChecker, cache *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		ctx := c.Request.Context()
		cacheKey := utils.AdminCacheKey(email)

		if cache != nil {
			cached, err := cache.Get(ctx, cacheKey).Result()
			if err == nil {
				if isAdmin, _ := strconv.ParseBool(cached); isAdmin {
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
				return
			} else if err != redis.Nil {
				logger.Warn("admin cache read failed, falling back to store", zap.Error(err))
			}
		}

		isAdmin, err := checker.IsAdmin(ctx, email)
		if err != nil {
			logger.Error("admin lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if cache != nil {
			_ = cache.Set(ctx, cacheKey, strconv.FormatBool(isAdmin), adminCacheTTL).Err()
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}
		c.Next()
	}
}
