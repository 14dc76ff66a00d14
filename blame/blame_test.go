package blame_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhissng/axon/blame"
	"github.com/abhissng/axon/utils/constant"
)

func TestNewBlame(t *testing.T) {
	b := blame.NewBlame("test-error", "test message", "test description")

	assert.Equal(t, "test message", b.FetchMessage())
	assert.Equal(t, "test description", b.FetchDescription())
	assert.NotEmpty(t, b.FetchSource())
	assert.Contains(t, b.Error(), "test-error")
}

func TestBlameBuilders(t *testing.T) {
	cause := errors.New("root cause")
	b := blame.NewBasicBlame("test-error").
		WithComponent(constant.ErrDispatch).
		WithResponseType(constant.ServiceUnavailable).
		WithField("plugin", "rpc").
		WithCause(cause)

	assert.Equal(t, constant.ErrDispatch, b.FetchComponent())
	assert.Equal(t, constant.ServiceUnavailable, b.FetchResponseType())
	assert.Equal(t, "rpc", b.FetchFields()["plugin"])
	assert.Contains(t, b.FetchCauses(), cause)
}

func TestBlameWrap(t *testing.T) {
	b := blame.NewBasicBlame("test-error").Wrap(
		blame.WithField("key", "value"),
		blame.WithCauses(errors.New("one"), errors.New("two")),
	)

	assert.Equal(t, "value", b.FetchFields()["key"])
	assert.Len(t, b.FetchCauses(), 2)

	b = b.EmptyCause()
	assert.Empty(t, b.FetchCauses())
}

func TestCircuitBreakerOpenBlame(t *testing.T) {
	cause := errors.New("circuit breaker is open")
	b := blame.CircuitBreakerOpen("orders", "findById", cause)

	assert.Equal(t, blame.ErrorCircuitBreakerOpen, b.FetchErrCode())
	assert.Equal(t, constant.ErrBreaker, b.FetchComponent())
	assert.Equal(t, constant.ServiceUnavailable, b.FetchResponseType())
	assert.Equal(t, "orders", b.FetchFields()["group_key"])
	assert.Equal(t, "findById", b.FetchFields()["command_key"])
}

func TestBlameIsError(t *testing.T) {
	var err error = blame.SelectorInvalid()

	var b blame.Blame
	assert.ErrorAs(t, err, &b)
	assert.Equal(t, blame.ErrorSelectorInvalid, b.FetchErrCode())
}
