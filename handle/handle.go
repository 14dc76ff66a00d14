// Package handle models the per-plugin routing policy carried as opaque
// serialized blobs on selector and rule configuration.
package handle

import (
	"time"

	"github.com/abhissng/axon/utils/constant"
	"github.com/abhissng/axon/utils/helpers"
)

// SelectorHandle is the selector-scoped policy: where the backend lives.
type SelectorHandle struct {
	// Registry is the discovery address, e.g. "etcd://127.0.0.1:2379".
	Registry string `koanf:"registry" json:"registry"`
	// AppName is the backend application name registered for discovery.
	AppName string `koanf:"appName" json:"appName"`
	// Protocol selects the invoker transport; empty means the default.
	Protocol string `koanf:"protocol" json:"protocol"`
	// Port overrides the discovered instance port when non-zero.
	Port int `koanf:"port" json:"port"`
}

// Valid reports whether the selector carries the required routing params.
func (h SelectorHandle) Valid() bool {
	return !helpers.IsEmpty(h.Registry) && !helpers.IsEmpty(h.AppName)
}

// RuleHandle is the rule-scoped policy: how the single call is guarded.
type RuleHandle struct {
	Version     string `koanf:"version" json:"version"`
	Group       string `koanf:"group" json:"group"`
	Retries     int    `koanf:"retries" json:"retries"`
	LoadBalance string `koanf:"loadBalance" json:"loadBalance"`

	// Timeout bounds the invocation, in milliseconds.
	Timeout int64 `koanf:"timeout" json:"timeout"`

	// Breaker identity. Either may be left empty in config and is then
	// backfilled from the request's interface and method names.
	GroupKey   string `koanf:"groupKey" json:"groupKey"`
	CommandKey string `koanf:"commandKey" json:"commandKey"`

	// Breaker tuning. Zero values fall back to defaults.
	ErrorThresholdPercentage int   `koanf:"errorThresholdPercentage" json:"errorThresholdPercentage"`
	RequestVolumeThreshold   int   `koanf:"requestVolumeThreshold" json:"requestVolumeThreshold"`
	SleepWindowMilliseconds  int64 `koanf:"sleepWindowInMilliseconds" json:"sleepWindowInMilliseconds"`
	MaxConcurrentRequests    int   `koanf:"maxConcurrentRequests" json:"maxConcurrentRequests"`

	// Fallback names the degradation mode when the breaker rejects the
	// call; "empty" completes the request without a result value.
	Fallback string `koanf:"fallback" json:"fallback"`
}

// ExecutionTimeout returns the invocation deadline, defaulting when unset.
func (h RuleHandle) ExecutionTimeout() time.Duration {
	if h.Timeout <= 0 {
		return constant.DefaultDispatchTimeout
	}
	return time.Duration(h.Timeout) * time.Millisecond
}
