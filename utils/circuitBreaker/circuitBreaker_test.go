package circuitBreaker_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"

	"github.com/abhissng/axon/handle"
	"github.com/abhissng/axon/utils/circuitBreaker"
)

func TestKeyFor(t *testing.T) {
	rule := handle.RuleHandle{GroupKey: "orders", CommandKey: "findById"}
	key := circuitBreaker.KeyFor(rule)

	assert.Equal(t, "orders", key.Group)
	assert.Equal(t, "findById", key.Command)
	assert.Equal(t, "orders:findById", key.Name())
}

func TestDeriveOptionsTripsOnFailureRate(t *testing.T) {
	rule := handle.RuleHandle{
		GroupKey:                 "orders",
		CommandKey:               "findById",
		ErrorThresholdPercentage: 50,
		RequestVolumeThreshold:   4,
		SleepWindowMilliseconds:  60000,
	}
	breaker := circuitBreaker.NewCircuitBreaker(circuitBreaker.DeriveOptions(rule)...)
	assert.Equal(t, "orders:findById", breaker.Name())

	boom := errors.New("boom")
	for i := 0; i < 4; i++ {
		_, err := breaker.Execute(func() (any, error) { return nil, boom })
		assert.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, breaker.State())

	_, err := breaker.Execute(func() (any, error) { return "unreached", nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestDeriveOptionsHonorsVolumeThreshold(t *testing.T) {
	rule := handle.RuleHandle{
		GroupKey:                 "orders",
		CommandKey:               "findById",
		ErrorThresholdPercentage: 50,
		RequestVolumeThreshold:   10,
	}
	breaker := circuitBreaker.NewCircuitBreaker(circuitBreaker.DeriveOptions(rule)...)

	// Below the volume threshold the breaker stays closed even at 100% failures.
	boom := errors.New("boom")
	for i := 0; i < 5; i++ {
		_, _ = breaker.Execute(func() (any, error) { return nil, boom })
	}
	assert.Equal(t, gobreaker.StateClosed, breaker.State())
}

func TestNewCircuitBreakerDefaults(t *testing.T) {
	breaker := circuitBreaker.NewCircuitBreaker()
	assert.Equal(t, circuitBreaker.DefaultCircuitBreakerName, breaker.Name())
}

func TestNewCircuitBreakerWithOptions(t *testing.T) {
	breaker := circuitBreaker.NewCircuitBreaker(
		circuitBreaker.WithName("custom"),
		circuitBreaker.WithTimeout(time.Second),
		circuitBreaker.WithMaxRequests(3),
		circuitBreaker.WithInterval(time.Minute),
	)
	assert.Equal(t, "custom", breaker.Name())
}

func TestRegistryFetchReturnsSameInstance(t *testing.T) {
	registry := circuitBreaker.NewRegistry()
	key := circuitBreaker.Key{Group: "orders", Command: "findById"}

	first := registry.Fetch(key)
	second := registry.Fetch(key)
	assert.Same(t, first, second)
	assert.True(t, registry.Contains(key))
	assert.Equal(t, 1, registry.Len())

	other := registry.Fetch(circuitBreaker.Key{Group: "orders", Command: "deleteById"})
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, registry.Len())
}

func TestRegistryFetchConcurrent(t *testing.T) {
	registry := circuitBreaker.NewRegistry()
	key := circuitBreaker.Key{Group: "orders", Command: "findById"}

	var wg sync.WaitGroup
	breakers := make([]*gobreaker.CircuitBreaker, 32)
	for i := 0; i < len(breakers); i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			breakers[n] = registry.Fetch(key)
		}(i)
	}
	wg.Wait()

	for _, breaker := range breakers {
		assert.Same(t, breakers[0], breaker)
	}
	assert.Equal(t, 1, registry.Len())
}
