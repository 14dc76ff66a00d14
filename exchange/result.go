package exchange

import (
	"github.com/abhissng/axon/blame"
	"github.com/abhissng/axon/result"
	"github.com/abhissng/axon/utils/constant"
)

// AttrDispatchBlame carries the structured error of a failed dispatch.
const AttrDispatchBlame = "dispatch_blame"

// SetBlame records the dispatch failure and marks the response errored.
func (e *Exchange) SetBlame(b blame.Blame) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[AttrDispatchBlame] = b
	e.attrs[AttrResultKind] = constant.Error
}

// Blame returns the recorded dispatch failure, or nil.
func (e *Exchange) Blame() blame.Blame {
	value, ok := e.Get(AttrDispatchBlame)
	if !ok {
		return nil
	}
	b, _ := value.(blame.Blame)
	return b
}

// ResultOf reads the dispatch outcome of an exchange as a typed Result.
// An exchange that finished without a result value (empty completion or
// pass-through) yields a success carrying nil.
func ResultOf[T any](ex *Exchange) result.Result[T] {
	if b := ex.Blame(); b != nil {
		return result.NewFailure[T](b)
	}
	value, ok := ex.Result()
	if !ok {
		return result.NewSuccess[T](nil)
	}
	typed, ok := value.(T)
	if !ok {
		return result.NewFailure[T](blame.TypeConversion())
	}
	return result.NewSuccess(&typed)
}
