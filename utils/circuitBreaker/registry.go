package circuitBreaker

import (
	"sync"

	"github.com/sony/gobreaker"
)

// Registry keeps one circuit breaker per Key for the process lifetime.
// The first Fetch for a key fixes that breaker's settings; later calls
// return the same instance regardless of the options they carry.
type Registry struct {
	mu       sync.RWMutex
	breakers map[Key]*gobreaker.CircuitBreaker
}

// NewRegistry creates an empty breaker registry.
func NewRegistry() *Registry {
	return &Registry{breakers: make(map[Key]*gobreaker.CircuitBreaker)}
}

// Fetch returns the breaker registered for key, creating it on first use.
func (r *Registry) Fetch(key Key, options ...CircuitBreakerOption) *gobreaker.CircuitBreaker {
	r.mu.RLock()
	breaker, ok := r.breakers[key]
	r.mu.RUnlock()
	if ok {
		return breaker
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if breaker, ok = r.breakers[key]; ok {
		return breaker
	}
	breaker = NewCircuitBreaker(options...)
	r.breakers[key] = breaker
	return breaker
}

// Contains reports whether a breaker exists for key.
func (r *Registry) Contains(key Key) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.breakers[key]
	return ok
}

// Len returns the number of registered breakers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.breakers)
}
