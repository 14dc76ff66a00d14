package registry

import (
	"context"
	"time"

	"github.com/abhissng/axon/utils/codec"
	clientv3 "go.etcd.io/etcd/client/v3"
)

const (
	// DefaultKeyPrefix is the root under which backends register,
	// as /axon/services/{appName}/{addr}.
	DefaultKeyPrefix = "/axon/services"

	defaultDialTimeout = 5 * time.Second
)

// EtcdRegistry implements Registry over etcd v3.
// Instance values are JSON-encoded ServiceInstance records written by
// the backends themselves under TTL leases, so crashed instances drop
// out of discovery on their own.
type EtcdRegistry struct {
	client *clientv3.Client
	prefix string
}

// EtcdOption is a function type for configuring the EtcdRegistry.
type EtcdOption func(*EtcdRegistry)

// WithKeyPrefix overrides the registration key prefix.
func WithKeyPrefix(prefix string) EtcdOption {
	return func(r *EtcdRegistry) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// NewEtcdRegistry connects to the given etcd endpoints.
func NewEtcdRegistry(endpoints []string, options ...EtcdOption) (*EtcdRegistry, error) {
	client, err := clientv3.New(clientv3.Config{
		Endpoints:   endpoints,
		DialTimeout: defaultDialTimeout,
	})
	if err != nil {
		return nil, err
	}

	r := &EtcdRegistry{client: client, prefix: DefaultKeyPrefix}
	for _, option := range options {
		option(r)
	}
	return r, nil
}

// Discover returns all currently registered instances of appName.
// Malformed entries are skipped rather than failing the lookup.
func (r *EtcdRegistry) Discover(ctx context.Context, appName string) ([]ServiceInstance, error) {
	prefix := r.prefix + "/" + appName + "/"

	resp, err := r.client.Get(ctx, prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, err
	}

	instances := make([]ServiceInstance, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		instance, err := codec.Decode[ServiceInstance](kv.Value, codec.JSON)
		if err != nil {
			continue
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// Watch emits a refreshed instance list whenever registrations under
// appName change. The channel closes when ctx is cancelled.
func (r *EtcdRegistry) Watch(ctx context.Context, appName string) <-chan []ServiceInstance {
	ch := make(chan []ServiceInstance, 1)
	prefix := r.prefix + "/" + appName + "/"

	go func() {
		defer close(ch)
		watchChan := r.client.Watch(ctx, prefix, clientv3.WithPrefix())
		for range watchChan {
			instances, err := r.Discover(ctx, appName)
			if err != nil {
				continue
			}
			select {
			case ch <- instances:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// Close releases the underlying etcd client connection.
func (r *EtcdRegistry) Close() error {
	return r.client.Close()
}
