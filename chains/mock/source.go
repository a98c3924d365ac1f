package mock

import (
	"context"
	"fmt"
	"sync"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
	mocktypes "github.com/datachainlab/ibc-mock-client/modules/light-clients/xx-mock/types"
	"github.com/hyperledger-labs/yui-header-relayer/core"
)

// SourceChain is an in-memory chain whose headers exist for every height in [1, tip].
type SourceChain struct {
	chainID  string
	role     core.ChainRole
	revision uint64

	mu  sync.RWMutex
	tip uint64
}

var _ core.ChainHandle = (*SourceChain)(nil)

func NewSourceChain(chainID string, role core.ChainRole, tip uint64) *SourceChain {
	return &SourceChain{
		chainID: chainID,
		role:    role,
		tip:     tip,
	}
}

func (c *SourceChain) ChainID() string {
	return c.chainID
}

func (c *SourceChain) Config() core.ChainInfo {
	return core.ChainInfo{ChainID: c.chainID, Role: c.role}
}

// Tip returns the latest height of the chain.
func (c *SourceChain) Tip() clienttypes.Height {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clienttypes.NewHeight(c.revision, c.tip)
}

// Produce appends n blocks and returns the new tip.
func (c *SourceChain) Produce(n uint64) clienttypes.Height {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tip += n
	return clienttypes.NewHeight(c.revision, c.tip)
}

func (c *SourceChain) clientState(height uint64) ibcexported.ClientState {
	return &mocktypes.ClientState{LatestHeight: clienttypes.NewHeight(c.revision, height)}
}

func (c *SourceChain) BuildClientState(_ context.Context, height clienttypes.Height, _ core.ClientSettings) (ibcexported.ClientState, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if h := height.GetRevisionHeight(); h == 0 || h > c.tip {
		return nil, fmt.Errorf("header not found: height=%v tip=%d", height, c.tip)
	}
	return c.clientState(height.GetRevisionHeight()), nil
}

// QueryClients returns the client states of heights [offset, offset+limit)
// that do not exceed the tip.
func (c *SourceChain) QueryClients(_ context.Context, req core.PageRequest) ([]core.IdentifiedClientState, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	from := max(req.Offset, 1)
	to := min(req.Offset+req.Limit, c.tip+1)
	var ret []core.IdentifiedClientState
	for h := from; h < to; h++ {
		ret = append(ret, core.IdentifiedClientState{
			ClientID:    fmt.Sprintf("%s-%d", core.ClientTypeMock.Tag(), h),
			ClientState: c.clientState(h),
		})
	}
	return ret, nil
}

func (c *SourceChain) SendMessagesAndWaitCommit(_ context.Context, _ core.TrackedMsgs) ([]core.EventWithHeight, error) {
	return nil, fmt.Errorf("%s is a source chain and does not accept messages", c.chainID)
}
