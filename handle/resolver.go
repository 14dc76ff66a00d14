package handle

import (
	"github.com/abhissng/axon/adapters/log"
	"github.com/abhissng/axon/exchange"
	"github.com/abhissng/axon/utils/helpers"
	lru "github.com/hashicorp/golang-lru/v2"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const resolverCacheSize = 1024

// Resolver parses selector and rule policy blobs into typed handles.
// Parsed handles are memoized by blob content so hot routes skip the
// decode on every request. Malformed blobs never fail the request;
// they resolve to a blank handle and are logged once per occurrence.
type Resolver struct {
	log       *log.Log
	selectors *lru.Cache[string, SelectorHandle]
	rules     *lru.Cache[string, RuleHandle]
}

// NewResolver creates a Resolver with bounded memoization caches.
func NewResolver(l *log.Log) *Resolver {
	if l == nil {
		l = log.NewBasicLogger(helpers.IsProdEnvironment())
	}
	selectors, _ := lru.New[string, SelectorHandle](resolverCacheSize)
	rules, _ := lru.New[string, RuleHandle](resolverCacheSize)
	return &Resolver{
		log:       l,
		selectors: selectors,
		rules:     rules,
	}
}

// Resolve parses both policy blobs and backfills the rule's breaker
// identity from the request when the config leaves it empty.
func (r *Resolver) Resolve(selectorBlob, ruleBlob []byte, req *exchange.RequestContext) (SelectorHandle, RuleHandle) {
	selector := r.ResolveSelector(selectorBlob)
	rule := Backfill(r.ResolveRule(ruleBlob), req)
	return selector, rule
}

// ResolveSelector parses a selector policy blob, memoized by content.
func (r *Resolver) ResolveSelector(blob []byte) SelectorHandle {
	if len(blob) == 0 {
		return SelectorHandle{}
	}
	if cached, ok := r.selectors.Get(string(blob)); ok {
		return cached
	}

	var h SelectorHandle
	if err := unmarshalBlob(blob, &h); err != nil {
		r.log.Warn("selector handle parse failed", log.Err(err))
		return SelectorHandle{}
	}
	r.selectors.Add(string(blob), h)
	return h
}

// ResolveRule parses a rule policy blob, memoized by content.
// The cached handle is never backfilled; callers receive a copy.
func (r *Resolver) ResolveRule(blob []byte) RuleHandle {
	if len(blob) == 0 {
		return RuleHandle{}
	}
	if cached, ok := r.rules.Get(string(blob)); ok {
		return cached
	}

	var h RuleHandle
	if err := unmarshalBlob(blob, &h); err != nil {
		r.log.Warn("rule handle parse failed", log.Err(err))
		return RuleHandle{}
	}
	r.rules.Add(string(blob), h)
	return h
}

// Backfill fills empty breaker identity keys from the request target.
// It operates on a copy; the input handle is left untouched.
func Backfill(rule RuleHandle, req *exchange.RequestContext) RuleHandle {
	if req == nil {
		return rule
	}
	if helpers.IsEmpty(rule.GroupKey) {
		rule.GroupKey = req.Interface
	}
	if helpers.IsEmpty(rule.CommandKey) {
		rule.CommandKey = req.Method
	}
	return rule
}

func unmarshalBlob[T any](blob []byte, target *T) error {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(blob), kjson.Parser()); err != nil {
		return err
	}
	return k.Unmarshal("", target)
}
