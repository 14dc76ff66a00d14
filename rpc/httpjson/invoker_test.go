package httpjson_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhissng/axon/blame"
	"github.com/abhissng/axon/registry"
	"github.com/abhissng/axon/rpc"
	"github.com/abhissng/axon/rpc/httpjson"
)

type staticRegistry struct {
	instances []registry.ServiceInstance
	err       error
}

func (r *staticRegistry) Discover(_ context.Context, _ string) ([]registry.ServiceInstance, error) {
	return r.instances, r.err
}

func (r *staticRegistry) Close() error {
	return nil
}

func catalogOf(reg registry.Registry) func(string) (registry.Registry, error) {
	return func(string) (registry.Registry, error) {
		return reg, nil
	}
}

func testServiceParams() rpc.ServiceParams {
	return rpc.ServiceParams{
		Registry:  "etcd://127.0.0.1:2379",
		AppName:   "orders",
		Interface: "com.example.OrderService",
		Method:    "findById",
		Arguments: map[string]any{"id": float64(42)},
		Timeout:   time.Second,
	}
}

func TestInvokePostsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/invoke", r.URL.Path)

		var envelope map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		assert.Equal(t, "com.example.OrderService", envelope["interface"])
		assert.Equal(t, "findById", envelope["method"])

		_ = json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": map[string]any{"id": 42}})
	}))
	defer server.Close()

	reg := &staticRegistry{instances: []registry.ServiceInstance{{Addr: strings.TrimPrefix(server.URL, "http://")}}}
	invoker := httpjson.NewInvoker(nil, httpjson.WithCatalogOpener(catalogOf(reg)))

	data, err := invoker.Invoke(context.Background(), testServiceParams())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(42)}, data)
}

func TestInvokeBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 500, "message": "boom"})
	}))
	defer server.Close()

	reg := &staticRegistry{instances: []registry.ServiceInstance{{Addr: strings.TrimPrefix(server.URL, "http://")}}}
	invoker := httpjson.NewInvoker(nil, httpjson.WithCatalogOpener(catalogOf(reg)))

	_, err := invoker.Invoke(context.Background(), testServiceParams())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestInvokeNoInstances(t *testing.T) {
	invoker := httpjson.NewInvoker(nil, httpjson.WithCatalogOpener(catalogOf(&staticRegistry{})))

	_, err := invoker.Invoke(context.Background(), testServiceParams())
	require.Error(t, err)

	var b blame.Blame
	require.ErrorAs(t, err, &b)
	assert.Equal(t, blame.ErrorNoInstanceAvailable, b.FetchErrCode())
}

func TestInvokeRegistryUnreachable(t *testing.T) {
	reg := &staticRegistry{err: context.DeadlineExceeded}
	invoker := httpjson.NewInvoker(nil, httpjson.WithCatalogOpener(catalogOf(reg)))

	_, err := invoker.Invoke(context.Background(), testServiceParams())
	require.Error(t, err)

	var b blame.Blame
	require.ErrorAs(t, err, &b)
	assert.Equal(t, blame.ErrorRegistryUnreachable, b.FetchErrCode())
}

func TestInvokeRetriesTransientFailures(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": "recovered"})
	}))
	defer server.Close()

	reg := &staticRegistry{instances: []registry.ServiceInstance{{Addr: strings.TrimPrefix(server.URL, "http://")}}}
	invoker := httpjson.NewInvoker(nil, httpjson.WithCatalogOpener(catalogOf(reg)))

	params := testServiceParams()
	params.Retries = 2

	data, err := invoker.Invoke(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "recovered", data)
	assert.Equal(t, int64(2), hits.Load())
}

func TestInvokeRoundRobin(t *testing.T) {
	var first, second atomic.Int64
	serverA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		first.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": "a"})
	}))
	defer serverA.Close()
	serverB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		second.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": "b"})
	}))
	defer serverB.Close()

	reg := &staticRegistry{instances: []registry.ServiceInstance{
		{Addr: strings.TrimPrefix(serverA.URL, "http://")},
		{Addr: strings.TrimPrefix(serverB.URL, "http://")},
	}}
	invoker := httpjson.NewInvoker(nil, httpjson.WithCatalogOpener(catalogOf(reg)))

	for i := 0; i < 4; i++ {
		_, err := invoker.Invoke(context.Background(), testServiceParams())
		require.NoError(t, err)
	}
	assert.Equal(t, int64(2), first.Load())
	assert.Equal(t, int64(2), second.Load())
}
