package handle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhissng/axon/exchange"
	"github.com/abhissng/axon/handle"
	"github.com/abhissng/axon/utils/constant"
)

func TestResolveSelector(t *testing.T) {
	resolver := handle.NewResolver(nil)

	selector := resolver.ResolveSelector([]byte(`{
		"registry": "etcd://127.0.0.1:2379",
		"appName": "orders",
		"protocol": "httpjson",
		"port": 8080
	}`))

	assert.Equal(t, "etcd://127.0.0.1:2379", selector.Registry)
	assert.Equal(t, "orders", selector.AppName)
	assert.Equal(t, "httpjson", selector.Protocol)
	assert.Equal(t, 8080, selector.Port)
	assert.True(t, selector.Valid())
}

func TestResolveSelectorMalformed(t *testing.T) {
	resolver := handle.NewResolver(nil)

	// A malformed blob must never fail the request; it resolves blank.
	selector := resolver.ResolveSelector([]byte(`{"registry": `))
	assert.Equal(t, handle.SelectorHandle{}, selector)
	assert.False(t, selector.Valid())

	selector = resolver.ResolveSelector(nil)
	assert.False(t, selector.Valid())
}

func TestSelectorValidRequiresBothFields(t *testing.T) {
	assert.False(t, handle.SelectorHandle{Registry: "etcd://127.0.0.1:2379"}.Valid())
	assert.False(t, handle.SelectorHandle{AppName: "orders"}.Valid())
	assert.True(t, handle.SelectorHandle{Registry: "etcd://127.0.0.1:2379", AppName: "orders"}.Valid())
}

func TestResolveRule(t *testing.T) {
	resolver := handle.NewResolver(nil)

	rule := resolver.ResolveRule([]byte(`{
		"version": "1.0.0",
		"group": "prod",
		"retries": 2,
		"timeout": 250,
		"groupKey": "orders",
		"commandKey": "findById",
		"errorThresholdPercentage": 40,
		"requestVolumeThreshold": 10,
		"sleepWindowInMilliseconds": 3000,
		"fallback": "empty"
	}`))

	assert.Equal(t, "1.0.0", rule.Version)
	assert.Equal(t, 2, rule.Retries)
	assert.Equal(t, "orders", rule.GroupKey)
	assert.Equal(t, "findById", rule.CommandKey)
	assert.Equal(t, 40, rule.ErrorThresholdPercentage)
	assert.Equal(t, int64(3000), rule.SleepWindowMilliseconds)
	assert.Equal(t, "empty", rule.Fallback)
	assert.Equal(t, 250*time.Millisecond, rule.ExecutionTimeout())
}

func TestExecutionTimeoutDefault(t *testing.T) {
	assert.Equal(t, constant.DefaultDispatchTimeout, handle.RuleHandle{}.ExecutionTimeout())
	assert.Equal(t, constant.DefaultDispatchTimeout, handle.RuleHandle{Timeout: -5}.ExecutionTimeout())
}

func TestBackfillFillsEmptyKeysFromRequest(t *testing.T) {
	req := exchange.NewRequestContext(exchange.TransportRPC, "com.example.OrderService", "findById")

	rule := handle.Backfill(handle.RuleHandle{}, req)
	assert.Equal(t, "com.example.OrderService", rule.GroupKey)
	assert.Equal(t, "findById", rule.CommandKey)
}

func TestBackfillKeepsConfiguredKeys(t *testing.T) {
	req := exchange.NewRequestContext(exchange.TransportRPC, "com.example.OrderService", "findById")

	rule := handle.Backfill(handle.RuleHandle{GroupKey: "custom-group", CommandKey: "custom-command"}, req)
	assert.Equal(t, "custom-group", rule.GroupKey)
	assert.Equal(t, "custom-command", rule.CommandKey)
}

func TestBackfillLeavesInputUntouched(t *testing.T) {
	req := exchange.NewRequestContext(exchange.TransportRPC, "com.example.OrderService", "findById")
	original := handle.RuleHandle{Timeout: 100}

	_ = handle.Backfill(original, req)
	assert.Empty(t, original.GroupKey)
	assert.Empty(t, original.CommandKey)
}

func TestResolveBackfillsDeterministically(t *testing.T) {
	resolver := handle.NewResolver(nil)
	req := exchange.NewRequestContext(exchange.TransportRPC, "com.example.OrderService", "findById")
	ruleBlob := []byte(`{"timeout": 100}`)

	// Two resolutions of the same blobs must agree on the breaker identity,
	// including the second one served from the memoization cache.
	_, first := resolver.Resolve(nil, ruleBlob, req)
	_, second := resolver.Resolve(nil, ruleBlob, req)

	assert.Equal(t, first.GroupKey, second.GroupKey)
	assert.Equal(t, first.CommandKey, second.CommandKey)
	assert.Equal(t, "com.example.OrderService", first.GroupKey)
	assert.Equal(t, "findById", first.CommandKey)
}
