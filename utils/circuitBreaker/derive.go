package circuitBreaker

import (
	"time"

	"github.com/abhissng/axon/handle"
	"github.com/sony/gobreaker"
)

// Key identifies one circuit breaker: a group (service interface) and a
// command (method) within it.
type Key struct {
	Group   string
	Command string
}

// Name returns the breaker name used for registration and logging.
func (k Key) Name() string {
	return k.Group + ":" + k.Command
}

// KeyFor derives the breaker key from a resolved rule policy.
func KeyFor(rule handle.RuleHandle) Key {
	return Key{Group: rule.GroupKey, Command: rule.CommandKey}
}

// DeriveOptions maps rule policy fields onto breaker options.
// Zero-valued policy fields fall back to the package defaults.
func DeriveOptions(rule handle.RuleHandle) []CircuitBreakerOption {
	volume := rule.RequestVolumeThreshold
	if volume <= 0 {
		volume = DefaultRequestVolumeThreshold
	}
	threshold := rule.ErrorThresholdPercentage
	if threshold <= 0 {
		threshold = DefaultErrorThresholdPercentage
	}
	sleepWindow := DefaultSleepWindow
	if rule.SleepWindowMilliseconds > 0 {
		sleepWindow = time.Duration(rule.SleepWindowMilliseconds) * time.Millisecond
	}

	options := []CircuitBreakerOption{
		WithName(KeyFor(rule).Name()),
		WithTimeout(sleepWindow),
		WithReadyToTrip(func(counts gobreaker.Counts) bool {
			if counts.Requests < uint32(volume) {
				return false
			}
			failureRate := float64(counts.TotalFailures) / float64(counts.Requests) * 100
			return failureRate >= float64(threshold)
		}),
	}
	if rule.MaxConcurrentRequests > 0 {
		options = append(options, WithMaxRequests(uint32(rule.MaxConcurrentRequests)))
	}
	return options
}
