package plugin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhissng/axon/exchange"
	"github.com/abhissng/axon/plugin"
)

type recordingPlugin struct {
	name  string
	order int
	skip  bool
	calls *[]string
}

func (p *recordingPlugin) Named() string {
	return p.name
}

func (p *recordingPlugin) Order() int {
	return p.order
}

func (p *recordingPlugin) Skip(_ *exchange.Exchange) bool {
	return p.skip
}

func (p *recordingPlugin) Execute(ctx context.Context, ex *exchange.Exchange, chain plugin.Chain) error {
	*p.calls = append(*p.calls, p.name)
	return chain.Next(ctx, ex)
}

func TestChainRunsInOrder(t *testing.T) {
	var calls []string
	chain := plugin.NewChain([]plugin.Plugin{
		&recordingPlugin{name: "third", order: 300, calls: &calls},
		&recordingPlugin{name: "first", order: 100, calls: &calls},
		&recordingPlugin{name: "second", order: 200, calls: &calls},
	})

	err := chain.Next(context.Background(), exchange.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestChainHonorsSkip(t *testing.T) {
	var calls []string
	chain := plugin.NewChain([]plugin.Plugin{
		&recordingPlugin{name: "kept", order: 100, calls: &calls},
		&recordingPlugin{name: "skipped", order: 200, skip: true, calls: &calls},
		&recordingPlugin{name: "last", order: 300, calls: &calls},
	})

	err := chain.Next(context.Background(), exchange.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"kept", "last"}, calls)
}

func TestChainEmpty(t *testing.T) {
	chain := plugin.NewChain(nil)
	assert.NoError(t, chain.Next(context.Background(), exchange.New()))
}
