package circuitBreaker

import "time"

const (
	DefaultCircuitBreakerName = "default-circuit-breaker"
	DefaultBreakerTimeout     = 10 * time.Second
	DefaultBreakerInterval    = 30 * time.Second
	DefaultBreakerMaxRequests = 5

	// Rule-derived defaults, applied when policy fields are zero.
	DefaultErrorThresholdPercentage = 50
	DefaultRequestVolumeThreshold   = 20
	DefaultSleepWindow              = 5 * time.Second
)
