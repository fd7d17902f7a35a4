package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// DefaultOTPTTL is how long an issued code stays valid.
const DefaultOTPTTL = 5 * time.Minute

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// OTPCache is a process-wide expiring store of one-time codes keyed by email.
// Entries are single-use and evicted on read once expired. Concurrent Issue
// calls for the same email race on overwrite with last-writer-wins, which is
// not atomic with respect to concurrent signup attempts.
type OTPCache struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	ttl     time.Duration
}

// NewOTPCache creates a new OTPCache with the given code lifetime.
func NewOTPCache(ttl time.Duration) *OTPCache {
	return &OTPCache{
		entries: make(map[string]otpEntry),
		ttl:     ttl,
	}
}

// Issue generates a uniformly random 6-digit code for an email and stores it,
// overwriting any prior unconsumed entry for that email.
func (c *OTPCache) Issue(email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[email] = otpEntry{
		code:      code,
		expiresAt: time.Now().Add(c.ttl),
	}
	return code, nil
}

// Verify reports whether the submitted code matches the stored entry for the
// email and the entry has not expired. On success the entry is consumed; an
// expired entry is evicted; a mismatch leaves the entry untouched so the
// client may retry within the remaining window.
func (c *OTPCache) Verify(email, submittedCode string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[email]
	if !ok {
		return false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, email)
		return false
	}
	if entry.code != submittedCode {
		return false
	}
	delete(c.entries, email)
	return true
}

// generateCode draws a uniformly random 6-digit numeric string.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
