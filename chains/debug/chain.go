package debug

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/hyperledger-labs/yui-header-relayer/log"
)

// Chain injects failures into the wrapped chain according to DEBUG_RELAYER_*
// environment variables suffixed with the chain id.
type Chain struct {
	OriginChain core.ChainHandle

	mu           sync.Mutex
	sendFailures int
}

var _ core.ChainHandle = (*Chain)(nil)

func NewChain(origin core.ChainHandle) *Chain {
	return &Chain{OriginChain: origin}
}

func (c *Chain) ChainID() string {
	return c.OriginChain.ChainID()
}

func (c *Chain) Config() core.ChainInfo {
	return c.OriginChain.Config()
}

func (c *Chain) SendMessagesAndWaitCommit(ctx context.Context, msgs core.TrackedMsgs) ([]core.EventWithHeight, error) {
	if err := debugFakeSendFailure(ctx, c); err != nil {
		return nil, err
	}
	return c.OriginChain.SendMessagesAndWaitCommit(ctx, msgs)
}

func debugLogger(chain *Chain) *log.RelayLogger {
	return log.GetLogger().WithChain(chain.ChainID()).WithModule("chains.debug")
}

// debugFakeSendFailure fails the first n submissions where n is the value of
// DEBUG_RELAYER_SEND_FAIL_<chainID>.
func debugFakeSendFailure(ctx context.Context, chain *Chain) error {
	env := fmt.Sprintf("DEBUG_RELAYER_SEND_FAIL_%s", chain.ChainID())
	val, ok := os.LookupEnv(env)
	if !ok {
		return nil
	}
	logger := debugLogger(chain)
	logger.InfoContext(ctx, "debug env found", "env", env, "value", val)

	n, err := strconv.Atoi(val)
	if err != nil {
		logger.ErrorContext(ctx, "malformed debug env", err, "env", env)
		return nil
	}

	chain.mu.Lock()
	defer chain.mu.Unlock()
	if chain.sendFailures >= n {
		return nil
	}
	chain.sendFailures++
	return fmt.Errorf("fake send failure: %d/%d", chain.sendFailures, n)
}
