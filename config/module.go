package config

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/spf13/cobra"
)

// ModuleI defines an interface of Module
type ModuleI interface {
	// Name returns the name of the module
	Name() string

	// RegisterInterfaces register the module interfaces to protobuf Any.
	RegisterInterfaces(registry codectypes.InterfaceRegistry)

	// BuildChain returns the chain handle described by cfg
	BuildChain(ctx *Context, cfg ChainConfig) (core.ChainHandle, error)

	// BuildEventSource returns the event source of a chain returned by BuildChain
	BuildEventSource(ctx *Context, cfg ChainConfig, chain core.ChainHandle) (core.EventSource, error)

	// GetCmd returns the command. It may return nil.
	GetCmd(ctx *Context) *cobra.Command
}
