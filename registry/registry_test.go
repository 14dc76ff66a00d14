package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhissng/axon/registry"
)

func TestParseAddress(t *testing.T) {
	scheme, endpoints, err := registry.ParseAddress("etcd://127.0.0.1:2379")
	assert.NoError(t, err)
	assert.Equal(t, "etcd", scheme)
	assert.Equal(t, []string{"127.0.0.1:2379"}, endpoints)
}

func TestParseAddressMultipleEndpoints(t *testing.T) {
	scheme, endpoints, err := registry.ParseAddress("etcd://h1:2379, h2:2379,h3:2379")
	assert.NoError(t, err)
	assert.Equal(t, "etcd", scheme)
	assert.Equal(t, []string{"h1:2379", "h2:2379", "h3:2379"}, endpoints)
}

func TestParseAddressMalformed(t *testing.T) {
	for _, address := range []string{"", "etcd://", "://h1:2379", "127.0.0.1:2379", "etcd:// , "} {
		_, _, err := registry.ParseAddress(address)
		assert.Error(t, err, "address %q", address)
	}
}
