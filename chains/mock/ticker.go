package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/hyperledger-labs/yui-header-relayer/core"
)

// Ticker produces a block on its source chain at every interval and delivers
// a NewBlock batch for it.
type Ticker struct {
	chain    *SourceChain
	interval time.Duration
	blocks   uint64
}

var _ core.EventSource = (*Ticker)(nil)

// NewTicker returns a Ticker that stops after producing blocks blocks, or
// never if blocks is zero.
func NewTicker(chain *SourceChain, interval time.Duration, blocks uint64) (*Ticker, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("block interval must be positive: %v", interval)
	}
	return &Ticker{
		chain:    chain,
		interval: interval,
		blocks:   blocks,
	}, nil
}

func (t *Ticker) Subscribe(ctx context.Context) (<-chan *core.EventBatch, error) {
	ch := make(chan *core.EventBatch)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for produced := uint64(0); t.blocks == 0 || produced < t.blocks; produced++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			tip := t.chain.Produce(1)
			batch := core.NewBlockBatch(t.chain.ChainID(), tip, tip.GetRevisionHeight())
			select {
			case <-ctx.Done():
				return
			case ch <- batch:
			}
		}
	}()
	return ch, nil
}
