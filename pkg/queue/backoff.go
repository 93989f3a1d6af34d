package queue

import (
	"math/rand/v2"
	"time"
)

// retryBackoff returns the delay before the next delivery of a message that
// has failed `attempts` times. Full jitter over an exponential ceiling:
// delay ∈ [0, min(cap, base·2^(attempts-1))]. Jitter decorrelates retries
// when many messages fail at once (e.g. a forge outage).
func retryBackoff(base, limit time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}

	ceiling := limit
	// base<<shift overflows past 62 bits; the cap kicks in long before.
	if shift := uint(attempts - 1); shift < 32 {
		if exp := base << shift; exp < limit {
			ceiling = exp
		}
	}
	if ceiling <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(ceiling) + 1))
}
