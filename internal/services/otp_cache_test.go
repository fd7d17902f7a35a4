package services_test

import (
	"testing"
	"time"

	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestOTPCache_RoundTrip(t *testing.T) {
	cache := services.NewOTPCache(services.DefaultOTPTTL)

	code, err := cache.Issue("a@x.com")
	assert.NoError(t, err)
	assert.Len(t, code, 6)

	// Correct code succeeds exactly once
	assert.True(t, cache.Verify("a@x.com", code))
	assert.False(t, cache.Verify("a@x.com", code), "code must be single-use")
}

func TestOTPCache_WrongCodeLeavesEntry(t *testing.T) {
	cache := services.NewOTPCache(services.DefaultOTPTTL)

	code, err := cache.Issue("a@x.com")
	assert.NoError(t, err)

	// A mismatch is rejected but does not consume the entry
	assert.False(t, cache.Verify("a@x.com", "000000"))
	assert.True(t, cache.Verify("a@x.com", code), "entry should survive a failed attempt")
}

func TestOTPCache_UnknownEmail(t *testing.T) {
	cache := services.NewOTPCache(services.DefaultOTPTTL)
	assert.False(t, cache.Verify("nobody@x.com", "123456"))
}

func TestOTPCache_Expiry(t *testing.T) {
	cache := services.NewOTPCache(10 * time.Millisecond)

	code, err := cache.Issue("a@x.com")
	assert.NoError(t, err)

	time.Sleep(25 * time.Millisecond)
	assert.False(t, cache.Verify("a@x.com", code), "expired code must be rejected")
}

func TestOTPCache_IssueOverwritesPriorCode(t *testing.T) {
	cache := services.NewOTPCache(services.DefaultOTPTTL)

	first, err := cache.Issue("a@x.com")
	assert.NoError(t, err)
	second, err := cache.Issue("a@x.com")
	assert.NoError(t, err)

	if first != second {
		assert.False(t, cache.Verify("a@x.com", first), "stale code must be rejected after reissue")
	}
	assert.True(t, cache.Verify("a@x.com", second))
}
