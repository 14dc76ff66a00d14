package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhissng/axon/cache"
	"github.com/abhissng/axon/exchange"
)

func TestMemorySource(t *testing.T) {
	source := cache.NewMemorySource()
	ex := exchange.New()

	_, _, ok := source.Policy("rpc", ex)
	assert.False(t, ok)

	selector := []byte(`{"registry":"etcd://127.0.0.1:2379","appName":"orders"}`)
	rule := []byte(`{"timeout":500}`)
	source.Store("rpc", selector, rule)

	gotSelector, gotRule, ok := source.Policy("rpc", ex)
	assert.True(t, ok)
	assert.Equal(t, selector, gotSelector)
	assert.Equal(t, rule, gotRule)

	source.Delete("rpc")
	_, _, ok = source.Policy("rpc", ex)
	assert.False(t, ok)
}
