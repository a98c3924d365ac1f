package mock

import (
	"context"
	"fmt"
	"sync"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
	"github.com/hyperledger-labs/yui-header-relayer/core"
)

// DestinationChain is an in-memory chain hosting a light client of a source
// chain. The light client accepts a unit of headers only if it links to the
// current tip.
type DestinationChain struct {
	chainID  string
	role     core.ChainRole
	unpacker codectypes.AnyUnpacker

	mu          sync.Mutex
	tip         clienttypes.Height
	submissions int
}

var _ core.ChainHandle = (*DestinationChain)(nil)

func NewDestinationChain(chainID string, role core.ChainRole, tip clienttypes.Height, unpacker codectypes.AnyUnpacker) *DestinationChain {
	if unpacker == nil {
		unpacker = NewInterfaceRegistry()
	}
	return &DestinationChain{
		chainID:  chainID,
		role:     role,
		unpacker: unpacker,
		tip:      tip,
	}
}

func (c *DestinationChain) ChainID() string {
	return c.chainID
}

func (c *DestinationChain) Config() core.ChainInfo {
	return core.ChainInfo{ChainID: c.chainID, Role: c.role}
}

// Tip returns the latest source height known to the light client.
func (c *DestinationChain) Tip() clienttypes.Height {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tip
}

// Submissions returns the number of accepted units.
func (c *DestinationChain) Submissions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submissions
}

func (c *DestinationChain) BuildClientState(_ context.Context, _ clienttypes.Height, _ core.ClientSettings) (ibcexported.ClientState, error) {
	return nil, fmt.Errorf("%s is a destination chain and does not produce client states", c.chainID)
}

func (c *DestinationChain) QueryClients(_ context.Context, _ core.PageRequest) ([]core.IdentifiedClientState, error) {
	return nil, fmt.Errorf("%s is a destination chain and does not produce client states", c.chainID)
}

// SendMessagesAndWaitCommit applies msgs to the light client. Headers at or
// below the tip are skipped. It returns an UpdateClient event for every
// header that advanced the tip.
func (c *DestinationChain) SendMessagesAndWaitCommit(_ context.Context, msgs core.TrackedMsgs) ([]core.EventWithHeight, error) {
	heights := make([]clienttypes.Height, 0, msgs.Len())
	for _, msg := range msgs.Msgs {
		var cs ibcexported.ClientState
		if err := c.unpacker.UnpackAny(msg, &cs); err != nil {
			return nil, fmt.Errorf("failed to unpack client state: %w", err)
		}
		latest := cs.GetLatestHeight()
		heights = append(heights, clienttypes.NewHeight(latest.GetRevisionNumber(), latest.GetRevisionHeight()))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(heights) == 0 {
		return nil, nil
	}
	if heights[0].GetRevisionHeight() > c.tip.GetRevisionHeight()+1 {
		return nil, core.NewMissingLastBlockIDError(c.tip)
	}
	for i := 1; i < len(heights); i++ {
		if heights[i].GetRevisionHeight() != heights[i-1].GetRevisionHeight()+1 {
			return nil, core.NewMissingLastBlockIDError(c.tip)
		}
	}

	var events []core.EventWithHeight
	for _, h := range heights {
		if h.LTE(c.tip) {
			continue
		}
		c.tip = h
		events = append(events, core.EventWithHeight{
			Event:  core.Event{Kind: core.EventKindUpdateClient, Height: h},
			Height: h,
		})
	}
	c.submissions++
	return events, nil
}
