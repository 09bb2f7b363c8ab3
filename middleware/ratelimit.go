package middleware

import (
	"fmt"
	"log"
	"time"

	"congtrinh/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware giới hạn số request theo IP trong một cửa sổ thời gian,
// đếm bằng INCR trên Redis. Redis lỗi thì cho qua để không chặn nhầm người dùng.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Printf("Lỗi rate limit Redis: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(c.Request.Context(), key, window)
		}

		if count > int64(limit) {
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
