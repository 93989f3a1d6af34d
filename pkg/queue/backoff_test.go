package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryBackoff_WithinCeiling(t *testing.T) {
	base := 2 * time.Second
	limit := 5 * time.Minute

	ceilings := map[int]time.Duration{
		1: 2 * time.Second,
		2: 4 * time.Second,
		3: 8 * time.Second,
		4: 16 * time.Second,
	}
	for attempts, ceiling := range ceilings {
		for i := 0; i < 100; i++ {
			d := retryBackoff(base, limit, attempts)
			assert.GreaterOrEqual(t, d, time.Duration(0), "attempts=%d", attempts)
			assert.LessOrEqual(t, d, ceiling, "attempts=%d", attempts)
		}
	}
}

func TestRetryBackoff_CapBoundsLateAttempts(t *testing.T) {
	base := 2 * time.Second
	limit := 5 * time.Minute

	for _, attempts := range []int{10, 30, 100, 1000} {
		for i := 0; i < 100; i++ {
			d := retryBackoff(base, limit, attempts)
			assert.LessOrEqual(t, d, limit, "attempts=%d", attempts)
		}
	}
}

func TestRetryBackoff_AttemptsFloor(t *testing.T) {
	base := 2 * time.Second
	for _, attempts := range []int{0, -1} {
		for i := 0; i < 100; i++ {
			d := retryBackoff(base, 5*time.Minute, attempts)
			assert.LessOrEqual(t, d, base)
		}
	}
}

func TestRetryBackoff_ZeroCeiling(t *testing.T) {
	assert.Equal(t, time.Duration(0), retryBackoff(0, 0, 1))
}
