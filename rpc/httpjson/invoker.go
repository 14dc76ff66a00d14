// Package httpjson is the reference Invoker: JSON-over-HTTP calls against
// instances discovered through the registry.
package httpjson

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	retry "github.com/avast/retry-go/v5"

	"github.com/abhissng/axon/adapters/log"
	"github.com/abhissng/axon/blame"
	"github.com/abhissng/axon/registry"
	"github.com/abhissng/axon/rpc"
	"github.com/abhissng/axon/utils/codec"
	"github.com/abhissng/axon/utils/helpers"
)

const invokePath = "/invoke"

// invokeRequest is the wire envelope posted to a backend instance.
type invokeRequest struct {
	Interface  string         `json:"interface"`
	Method     string         `json:"method"`
	ParamTypes []string       `json:"paramTypes,omitempty"`
	Arguments  map[string]any `json:"arguments,omitempty"`
	Version    string         `json:"version,omitempty"`
	Group      string         `json:"group,omitempty"`
	Generic    bool           `json:"generic,omitempty"`
	Async      bool           `json:"async,omitempty"`
}

// invokeResponse is the wire envelope returned by a backend instance.
type invokeResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Invoker performs JSON-over-HTTP invocations with per-app round-robin
// balancing over registry-discovered instances.
type Invoker struct {
	mu         sync.Mutex
	registries map[string]registry.Registry
	cursors    map[string]*atomic.Uint64

	client      *http.Client
	log         *log.Log
	openCatalog func(address string) (registry.Registry, error)
}

// InvokerOption is a function type for configuring the Invoker.
type InvokerOption func(*Invoker)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) InvokerOption {
	return func(i *Invoker) {
		if client != nil {
			i.client = client
		}
	}
}

// WithCatalogOpener overrides how registry addresses are dialed.
func WithCatalogOpener(open func(address string) (registry.Registry, error)) InvokerOption {
	return func(i *Invoker) {
		if open != nil {
			i.openCatalog = open
		}
	}
}

// NewInvoker creates an Invoker with the provided options.
func NewInvoker(l *log.Log, options ...InvokerOption) *Invoker {
	if l == nil {
		l = log.NewBasicLogger(helpers.IsProdEnvironment())
	}
	i := &Invoker{
		registries:  make(map[string]registry.Registry),
		cursors:     make(map[string]*atomic.Uint64),
		client:      &http.Client{},
		log:         l,
		openCatalog: openRegistry,
	}
	for _, option := range options {
		option(i)
	}
	return i
}

// Invoke discovers a live instance of params.AppName and posts the call.
// Transient transport failures are retried per params.Retries; the context
// bounds the whole attempt sequence.
func (i *Invoker) Invoke(ctx context.Context, params rpc.ServiceParams) (any, error) {
	reg, err := i.registryFor(params.Registry)
	if err != nil {
		return nil, blame.RegistryUnreachable(params.Registry, err)
	}

	instances, err := reg.Discover(ctx, params.AppName)
	if err != nil {
		return nil, blame.RegistryUnreachable(params.Registry, err)
	}
	if len(instances) == 0 {
		return nil, blame.NoInstanceAvailable(params.AppName)
	}

	body, err := codec.Encode(invokeRequest{
		Interface:  params.Interface,
		Method:     params.Method,
		ParamTypes: params.ParamTypes,
		Arguments:  params.Arguments,
		Version:    params.Version,
		Group:      params.Group,
		Generic:    params.Generic,
		Async:      params.Async,
	}, codec.JSON)
	if err != nil {
		return nil, blame.MarshalFailed(err)
	}

	attempts := uint(params.Retries) + 1
	return retry.NewWithData[any](
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
	).Do(func() (any, error) {
		instance := i.pick(params.AppName, instances)
		return i.post(ctx, instance, params, body)
	})
}

// registryFor returns the cached registry client for an address,
// dialing it on first use.
func (i *Invoker) registryFor(address string) (registry.Registry, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if reg, ok := i.registries[address]; ok {
		return reg, nil
	}
	reg, err := i.openCatalog(address)
	if err != nil {
		return nil, err
	}
	i.registries[address] = reg
	return reg, nil
}

// pick round-robins over the discovered instances per app name.
func (i *Invoker) pick(appName string, instances []registry.ServiceInstance) registry.ServiceInstance {
	i.mu.Lock()
	cursor, ok := i.cursors[appName]
	if !ok {
		cursor = &atomic.Uint64{}
		i.cursors[appName] = cursor
	}
	i.mu.Unlock()

	n := cursor.Add(1) - 1
	return instances[n%uint64(len(instances))]
}

func (i *Invoker) post(ctx context.Context, instance registry.ServiceInstance, params rpc.ServiceParams, body []byte) (any, error) {
	url := "http://" + targetAddr(instance, params.Port) + invokePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := i.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	i.log.Debug("backend call",
		log.String("app_name", params.AppName),
		log.String("addr", instance.Addr),
		log.Int("status", resp.StatusCode),
		log.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpjson: backend %s returned status %d", instance.Addr, resp.StatusCode)
	}

	decoded, err := codec.Decode[invokeResponse](raw, codec.JSON)
	if err != nil {
		return nil, blame.UnmarshalFailed(err)
	}
	if decoded.Code != 0 {
		return nil, fmt.Errorf("httpjson: backend error %d: %s", decoded.Code, decoded.Message)
	}
	return decoded.Data, nil
}

// targetAddr applies the selector's port override when present.
func targetAddr(instance registry.ServiceInstance, port int) string {
	if port <= 0 {
		return instance.Addr
	}
	host, _, err := net.SplitHostPort(instance.Addr)
	if err != nil {
		host = instance.Addr
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// openRegistry dials a registry by its address scheme.
func openRegistry(address string) (registry.Registry, error) {
	scheme, endpoints, err := registry.ParseAddress(address)
	if err != nil {
		return nil, err
	}
	switch scheme {
	case "etcd":
		return registry.NewEtcdRegistry(endpoints)
	default:
		return nil, fmt.Errorf("httpjson: unsupported registry scheme %q", scheme)
	}
}
