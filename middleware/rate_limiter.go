// middleware/ratelimiter.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	ctx = context.Background()
	rdb *redis.Client
)

// RateLimitConfig defines rules for different endpoints
type RateLimitConfig struct {
	MaxRequests int           // Maximum requests
	Window      time.Duration // Time window
	Algorithm   string        // "fixed_window", "sliding_window"
	Scope       string        // "ip", "user"
}

// The auth endpoints are throttled hardest: the OTP code space is only 10^6,
// so guessing protection lives here rather than in the verify handler.
var rateLimitRules = map[string]RateLimitConfig{
	"auth_signup": {
		MaxRequests: 5, // 5 signup/OTP requests per hour from same IP
		Window:      time.Hour,
		Algorithm:   "fixed_window",
		Scope:       "ip",
	},
	"auth_login": {
		MaxRequests: 10, // 10 login attempts per 15 minutes
		Window:      15 * time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "ip",
	},
	"auth_verify_otp": {
		MaxRequests: 5, // 5 OTP attempts per 10 minutes
		Window:      10 * time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "ip",
	},
	"auth_forgot_password": {
		MaxRequests: 3, // 3 reset requests per hour
		Window:      time.Hour,
		Algorithm:   "fixed_window",
		Scope:       "ip",
	},
	"auth_reset_password": {
		MaxRequests: 5, // 5 reset confirmations per 10 minutes
		Window:      10 * time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "ip",
	},
	"contact_submit": {
		MaxRequests: 10, // 10 contact messages per hour
		Window:      time.Hour,
		Algorithm:   "fixed_window",
		Scope:       "ip",
	},
	"files_upload": {
		MaxRequests: 20, // 20 uploads per hour per user
		Window:      time.Hour,
		Algorithm:   "sliding_window",
		Scope:       "user",
	},
	"courses_browse": {
		MaxRequests: 60, // 60 catalog reads per minute
		Window:      time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "ip",
	},
	"global_ip": {
		MaxRequests: 1000, // 1000 total requests per IP per minute
		Window:      time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "ip",
	},
}

// Initialize rate limiter
func InitRateLimiter(redisClient *redis.Client) {
	rdb = redisClient
}

// Get rate limit rule for endpoint
func getRateLimitRule(path, method string) RateLimitConfig {
	defaultRule := RateLimitConfig{
		MaxRequests: 60,
		Window:      time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "ip",
	}

	switch {
	case strings.Contains(path, "/auth/signup"), strings.Contains(path, "/auth/send-otp"):
		return rateLimitRules["auth_signup"]
	case strings.Contains(path, "/auth/login"):
		return rateLimitRules["auth_login"]
	case strings.Contains(path, "/auth/verify-otp"):
		return rateLimitRules["auth_verify_otp"]
	case strings.Contains(path, "/auth/forgot-password"):
		return rateLimitRules["auth_forgot_password"]
	case strings.Contains(path, "/auth/reset-password"):
		return rateLimitRules["auth_reset_password"]
	case strings.Contains(path, "/contact") && method == "POST":
		return rateLimitRules["contact_submit"]
	case strings.Contains(path, "/files/upload-avatar"):
		return rateLimitRules["files_upload"]
	case path == "/courses" && method == "GET":
		return rateLimitRules["courses_browse"]
	default:
		return defaultRule
	}
}

// Get client identifier based on scope
func getIdentifier(c *gin.Context, scope string) string {
	switch scope {
	case "user":
		if userID, exists := c.Get("userUUID"); exists {
			return fmt.Sprintf("user:%v", userID)
		}
		// Fallback to IP if no user context
		return fmt.Sprintf("ip:%s", c.ClientIP())
	default: // "ip"
		return fmt.Sprintf("ip:%s", c.ClientIP())
	}
}

// Fixed Window Rate Limiter - Lua Script (Most Reliable)
func fixedWindowRateLimit(key string, config RateLimitConfig) (bool, int, error) {
	redisKey := fmt.Sprintf("rate:fw:%s", key)

	// First element is an explicit allowed flag, same contract as the
	// sliding-window script below.
	luaScript := `
	local key = KEYS[1]
	local expiry = ARGV[1]
	local limit = tonumber(ARGV[2])

	local current = redis.call('GET', key)

	if current == false then
		redis.call('SET', key, 1, 'EX', expiry)
		return {1, limit - 1}
	end

	local count = tonumber(current)
	if count >= limit then
		return {0, 0}
	end

	local new_count = redis.call('INCR', key)
	return {1, limit - new_count}
	`

	result, err := rdb.Eval(ctx, luaScript, []string{redisKey},
		int(config.Window.Seconds()), config.MaxRequests).Result()

	if err != nil {
		return false, 0, err
	}

	results := result.([]interface{})
	allowed := results[0].(int64) == 1
	remaining := int(results[1].(int64))

	return allowed, remaining, nil
}

// Sliding Window Rate Limiter (More Accurate)
func slidingWindowRateLimit(key string, config RateLimitConfig) (bool, int, error) {
	now := time.Now().Unix()
	windowStart := now - int64(config.Window.Seconds())

	redisKey := fmt.Sprintf("rate:sw:%s", key)

	luaScript := `
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local max_requests = tonumber(ARGV[3])
	local window_seconds = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, 0, window_start)

	local current = redis.call('ZCARD', key)

	if current >= max_requests then
		return {0, 0}
	end

	redis.call('ZADD', key, now, now .. '-' .. redis.call('INCR', key .. ':seq'))
	redis.call('EXPIRE', key, window_seconds + 60)
	redis.call('EXPIRE', key .. ':seq', window_seconds + 60)

	local remaining = max_requests - current - 1
	if remaining < 0 then remaining = 0 end

	return {1, remaining}
	`

	result, err := rdb.Eval(ctx, luaScript, []string{redisKey},
		now, windowStart, config.MaxRequests, int(config.Window.Seconds())).Result()

	if err != nil {
		return false, 0, err
	}

	results := result.([]interface{})
	allowed := results[0].(int64) == 1
	remaining := int(results[1].(int64))

	return allowed, remaining, nil
}

// Main Rate Limiter Middleware
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting for health checks and static assets
		if c.Request.URL.Path == "/ping" || strings.HasPrefix(c.Request.URL.Path, "/static/") {
			c.Next()
			return
		}

		rule := getRateLimitRule(c.Request.URL.Path, c.Request.Method)

		identifier := getIdentifier(c, rule.Scope)
		key := fmt.Sprintf("%s:%s:%s", rule.Scope, c.Request.Method, c.Request.URL.Path)
		fullKey := fmt.Sprintf("%s:%s", key, identifier)

		// Global IP safeguard first
		globalIPKey := fmt.Sprintf("global:ip:%s", c.ClientIP())
		globalAllowed, _, err := slidingWindowRateLimit(globalIPKey, rateLimitRules["global_ip"])
		if err == nil && !globalAllowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many attempts. Please try again later.",
				"code":  "RATE_LIMIT_GLOBAL_IP",
			})
			c.Abort()
			return
		}

		var allowed bool
		var remaining int

		switch rule.Algorithm {
		case "fixed_window":
			allowed, remaining, err = fixedWindowRateLimit(fullKey, rule)
		default: // sliding_window
			allowed, remaining, err = slidingWindowRateLimit(fullKey, rule)
		}

		if err != nil {
			// Don't block requests if Redis fails
			c.Next()
			return
		}

		if !allowed {
			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rule.MaxRequests))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d",
				time.Now().Add(rule.Window).Unix()))

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many attempts. Please try again later.",
				"code":        "RATE_LIMIT_EXCEEDED",
				"retry_after": int(rule.Window.Seconds()),
				"limit":       rule.MaxRequests,
				"window":      rule.Window.String(),
			})

			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rule.MaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d",
			time.Now().Add(rule.Window).Unix()))

		c.Next()
	}
}

// Cleanup expired rate limit keys (run as background job)
func CleanupExpiredRateLimits() {
	ticker := time.NewTicker(time.Hour)

	go func() {
		for range ticker.C {
			// Redis expires keys on its own; this only sweeps keys that
			// somehow ended up without a TTL.
			ctx := context.Background()
			iter := rdb.Scan(ctx, 0, "rate:*", 1000).Iterator()

			for iter.Next(ctx) {
				key := iter.Val()
				ttl, err := rdb.TTL(ctx, key).Result()
				if err == nil && ttl < 0 {
					rdb.Del(ctx, key)
				}
			}
		}
	}()
}
