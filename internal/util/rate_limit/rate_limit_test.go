package rate_limit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Allow_WithinBurst_AllowsRequests(t *testing.T) {
	limiter := NewKeyedLimiter(10, 5)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "Request %d should be allowed", i+1)
	}
}

func Test_Allow_ExceedsBurst_DeniesRequest(t *testing.T) {
	limiter := NewKeyedLimiter(1, 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func Test_Allow_DifferentKeys_HaveIndependentBudgets(t *testing.T) {
	limiter := NewKeyedLimiter(1, 1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func Test_Allow_TokensRefillOverTime_AllowsRequestAfterWait(t *testing.T) {
	limiter := NewKeyedLimiter(20, 1) // one token every 50ms

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	time.Sleep(100 * time.Millisecond)

	assert.True(t, limiter.Allow("10.0.0.1"))
}

func Test_Reset_RemovesKeyState_RestoresBurst(t *testing.T) {
	limiter := NewKeyedLimiter(1, 1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	limiter.Reset("10.0.0.1")

	assert.True(t, limiter.Allow("10.0.0.1"))
}
