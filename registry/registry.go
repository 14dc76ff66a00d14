// Package registry discovers backend service instances for dispatch.
package registry

import (
	"context"
	"fmt"
	"strings"
)

// ServiceInstance is one discovered backend endpoint.
type ServiceInstance struct {
	Addr     string            `json:"addr"`
	Weight   int               `json:"weight,omitempty"`
	Version  string            `json:"version,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Registry looks up live instances of a named backend application.
type Registry interface {
	Discover(ctx context.Context, appName string) ([]ServiceInstance, error)
	Close() error
}

// ParseAddress splits a registry address like "etcd://h1:2379,h2:2379"
// into its scheme and endpoint list.
func ParseAddress(address string) (scheme string, endpoints []string, err error) {
	scheme, rest, found := strings.Cut(address, "://")
	if !found || scheme == "" || rest == "" {
		return "", nil, fmt.Errorf("registry: malformed address %q", address)
	}
	for _, endpoint := range strings.Split(rest, ",") {
		endpoint = strings.TrimSpace(endpoint)
		if endpoint != "" {
			endpoints = append(endpoints, endpoint)
		}
	}
	if len(endpoints) == 0 {
		return "", nil, fmt.Errorf("registry: no endpoints in address %q", address)
	}
	return scheme, endpoints, nil
}
