// File: internal/ratelimit/ratelimit_test.go
package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Limiter_AllowsWithinWindow(t *testing.T) {
	req := require.New(t)
	limiter := NewMemoryRateLimiter(&Config{
		WindowSize:    time.Minute,
		MaxAttempts:   3,
		CleanupPeriod: time.Minute,
		BanDuration:   time.Minute,
	})
	defer limiter.Close()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("1.2.3.4")
		req.True(allowed)
		req.Equal(3-(i+1), info.Remaining)
	}

	allowed, info := limiter.Allow("1.2.3.4")
	req.False(allowed)
	req.True(info.Banned)
	req.Positive(info.RetryAfter)
}

func Test_Limiter_IdentifiersAreIndependent(t *testing.T) {
	req := require.New(t)
	limiter := NewMemoryRateLimiter(&Config{
		WindowSize:    time.Minute,
		MaxAttempts:   1,
		CleanupPeriod: time.Minute,
		BanDuration:   time.Minute,
	})
	defer limiter.Close()

	allowed, _ := limiter.Allow("1.2.3.4")
	req.True(allowed)
	allowed, _ = limiter.Allow("1.2.3.4")
	req.False(allowed)

	allowed, _ = limiter.Allow("5.6.7.8")
	req.True(allowed)
}

func Test_GetClientIP(t *testing.T) {
	req := require.New(t)

	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	req.Equal("10.0.0.1", GetClientIP(r))

	r.Header.Set("X-Real-IP", "9.9.9.9")
	req.Equal("9.9.9.9", GetClientIP(r))

	r.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	req.Equal("1.1.1.1", GetClientIP(r))
}
