package pincode

import (
	"math/rand/v2"
	"time"
)

// backoff returns the pause before retry number attempt (starting at 1):
// initial doubled per attempt, with ±10% jitter, capped at maxInterval.
func backoff(attempt int, initial, maxInterval time.Duration) time.Duration {
	if attempt <= 0 || initial <= 0 {
		return 0
	}

	interval := float64(initial) * float64(uint64(1)<<min(attempt-1, 30))
	interval *= 1 + (rand.Float64()*2-1)*0.1
	if maxInterval > 0 && interval > float64(maxInterval) {
		interval = float64(maxInterval)
	}
	return time.Duration(interval)
}
