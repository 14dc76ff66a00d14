package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhissng/axon/blame"
	"github.com/abhissng/axon/exchange"
	"github.com/abhissng/axon/utils/constant"
)

func TestExchangeAttributes(t *testing.T) {
	ex := exchange.New()

	_, ok := ex.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, ex.GetString("missing"))

	ex.Put("key", "value")
	assert.Equal(t, "value", ex.GetString("key"))
}

func TestExchangeRequest(t *testing.T) {
	ex := exchange.New()
	assert.Nil(t, ex.Request())

	req := exchange.NewRequestContext(exchange.TransportRPC, "com.example.OrderService", "findById",
		exchange.WithArguments(map[string]any{"id": 42}),
		exchange.WithParamTypes("java.lang.Long"),
	)
	assert.NotEmpty(t, req.RequestID.String())

	ex = exchange.NewWithRequest(req)
	got := ex.Request()
	assert.Equal(t, req, got)
	assert.Equal(t, "findById", got.Method)
}

func TestExchangeResult(t *testing.T) {
	ex := exchange.New()

	_, ok := ex.Result()
	assert.False(t, ok)
	assert.Empty(t, ex.ResultKind())

	ex.SetResult(map[string]any{"id": 1})
	value, ok := ex.Result()
	assert.True(t, ok)
	assert.NotNil(t, value)
	assert.Equal(t, constant.Success, ex.ResultKind())
}

func TestExchangeBlame(t *testing.T) {
	ex := exchange.New()
	assert.Nil(t, ex.Blame())

	b := blame.SelectorInvalid()
	ex.SetBlame(b)
	assert.Equal(t, b, ex.Blame())
	assert.Equal(t, constant.Error, ex.ResultKind())
}

func TestResultOf(t *testing.T) {
	ex := exchange.New()

	// No outcome at all reads as an empty success.
	empty := exchange.ResultOf[string](ex)
	assert.True(t, empty.IsSuccess())
	assert.Nil(t, empty.ToValue())

	ex.SetResult("payload")
	typed := exchange.ResultOf[string](ex)
	assert.True(t, typed.IsSuccess())
	assert.Equal(t, "payload", *typed.ToValue())

	mismatched := exchange.ResultOf[int](ex)
	assert.True(t, mismatched.IsError())
	assert.Equal(t, blame.ErrorTypeConversion, mismatched.Error().FetchErrCode())

	ex.SetBlame(blame.SelectorInvalid())
	failed := exchange.ResultOf[string](ex)
	assert.True(t, failed.IsError())
	assert.Equal(t, blame.ErrorSelectorInvalid, failed.Error().FetchErrCode())
}
