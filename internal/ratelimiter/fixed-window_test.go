package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimitsPerClient(t *testing.T) {
	rl := NewFixedWindowLimiter(2, time.Minute)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)

	ok, retry := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retry)

	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok, "other clients have their own budget")
}

func TestFixedWindowResetsAfterWindow(t *testing.T) {
	rl := NewFixedWindowLimiter(1, 20*time.Millisecond)

	ok, _ := rl.Allow("client")
	assert.True(t, ok)
	ok, _ = rl.Allow("client")
	assert.False(t, ok)

	assert.Eventually(t, func() bool {
		ok, _ := rl.Allow("client")
		return ok
	}, time.Second, 10*time.Millisecond)
}
