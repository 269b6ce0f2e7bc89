package auth

import (
	"time"

	"freelance-market-api/internal/cache"
)

// tokenBlacklist holds tokens invalidated by logout until they would have
// expired anyway. In-memory on purpose: tokens are short-lived and a
// restart only un-blacklists tokens that were about to die.
var tokenBlacklist = cache.NewSimpleCache[string, struct{}](cache.Options{ConcurrencySafe: true})

// BlacklistToken marks a token as invalid for its remaining lifetime.
func BlacklistToken(tokenString string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	tokenBlacklist.Set(tokenString, struct{}{}, ttl)
}

// IsTokenBlacklisted reports whether a token has been logged out.
func IsTokenBlacklisted(tokenString string) bool {
	return tokenBlacklist.Has(tokenString)
}
