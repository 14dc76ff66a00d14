package cache

import (
	"sync"

	"github.com/abhissng/axon/exchange"
)

type policyEntry struct {
	selector []byte
	rule     []byte
}

// MemorySource is an in-memory PolicySource keyed by plugin name.
// Writes come from the config-plane watcher; reads from request goroutines.
type MemorySource struct {
	mu       sync.RWMutex
	policies map[string]policyEntry
}

// NewMemorySource creates an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{policies: make(map[string]policyEntry)}
}

// Store registers or replaces the policy blobs for a plugin.
func (s *MemorySource) Store(plugin string, selector, rule []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[plugin] = policyEntry{selector: selector, rule: rule}
}

// Delete removes the policy registered for a plugin.
func (s *MemorySource) Delete(plugin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.policies, plugin)
}

// Policy returns the blobs registered for the plugin, if any.
func (s *MemorySource) Policy(plugin string, _ *exchange.Exchange) ([]byte, []byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.policies[plugin]
	if !ok {
		return nil, nil, false
	}
	return entry.selector, entry.rule, true
}
