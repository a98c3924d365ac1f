package core

import (
	"context"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
)

// ChainRole is the chain family a handle belongs to.
type ChainRole string

const (
	ChainRoleEth    ChainRole = "eth"
	ChainRoleCkb    ChainRole = "ckb"
	ChainRoleAxon   ChainRole = "axon"
	ChainRoleCosmos ChainRole = "cosmos"
)

// Validate returns an error if the role is not one of the known families.
func (r ChainRole) Validate() error {
	switch r {
	case ChainRoleEth, ChainRoleCkb, ChainRoleAxon, ChainRoleCosmos:
		return nil
	default:
		return ErrConfigMismatch.Wrapf("unknown chain role %q", string(r))
	}
}

// ChainInfo is the part of a chain's configuration the relayer introspects.
type ChainInfo struct {
	ChainID string
	Role    ChainRole
}

// ClientSettings selects chain-specific options for building a client state.
type ClientSettings int

const (
	// ClientSettingsOther builds a client state without any chain-specific option.
	ClientSettingsOther ClientSettings = iota
	ClientSettingsTendermint
)

// PageRequest is an offset/limit pagination request ordered by ascending height.
type PageRequest struct {
	Offset uint64
	Limit  uint64
}

// IdentifiedClientState is a client state together with the identifier of its client.
type IdentifiedClientState struct {
	ClientID    string
	ClientState ibcexported.ClientState
}

// EventWithHeight is an event emitted by a committed transaction.
type EventWithHeight struct {
	Event  Event
	Height clienttypes.Height
}

//go:generate mockgen -source=chain.go -destination=mock_chain.go -package=core

// ChainHandle represents a chain the header relayer reads from or writes to
type ChainHandle interface {
	// ChainID returns ID of the chain
	ChainID() string

	// Config returns the role information of the chain
	Config() ChainInfo

	// BuildClientState builds a client state of this chain at the given height
	BuildClientState(ctx context.Context, height clienttypes.Height, settings ClientSettings) (ibcexported.ClientState, error)

	// QueryClients returns the client states already produced on this chain,
	// starting at req.Offset and in ascending height order
	QueryClients(ctx context.Context, req PageRequest) ([]IdentifiedClientState, error)

	// SendMessagesAndWaitCommit submits msgs as one atomic unit and waits until it is committed
	SendMessagesAndWaitCommit(ctx context.Context, msgs TrackedMsgs) ([]EventWithHeight, error)
}
