package module

import (
	"fmt"
	"strconv"
	"time"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/hyperledger-labs/yui-header-relayer/chains/mock"
	"github.com/hyperledger-labs/yui-header-relayer/config"
	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/hyperledger-labs/yui-header-relayer/coreutil"
	"github.com/spf13/cobra"
)

const (
	paramTip           = "tip"
	paramBlockInterval = "block-interval"
	paramBlocks        = "blocks"

	defaultBlockInterval = time.Second
)

type Module struct{}

var _ config.ModuleI = (*Module)(nil)

// Name returns the name of the module
func (Module) Name() string {
	return "mock"
}

// RegisterInterfaces register the module interfaces to protobuf Any.
func (Module) RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	mock.RegisterInterfaces(registry)
}

// BuildChain builds a destination chain for the ckb role and a source chain otherwise.
func (Module) BuildChain(ctx *config.Context, cfg config.ChainConfig) (core.ChainHandle, error) {
	tip, err := uintParam(cfg.Params, paramTip, 0)
	if err != nil {
		return nil, err
	}
	if cfg.Role == core.ChainRoleCkb {
		var unpacker codectypes.AnyUnpacker
		if ctx != nil && ctx.Codec != nil {
			unpacker = ctx.Codec.InterfaceRegistry()
		}
		return mock.NewDestinationChain(cfg.ChainID, cfg.Role, clienttypes.NewHeight(0, tip), unpacker), nil
	}
	return mock.NewSourceChain(cfg.ChainID, cfg.Role, tip), nil
}

// BuildEventSource returns a Ticker producing blocks on the source chain.
func (Module) BuildEventSource(_ *config.Context, cfg config.ChainConfig, chain core.ChainHandle) (core.EventSource, error) {
	src, err := coreutil.UnwrapChain[*mock.SourceChain](chain)
	if err != nil {
		return nil, err
	}
	interval := defaultBlockInterval
	if v, ok := cfg.Params[paramBlockInterval]; ok {
		if interval, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", paramBlockInterval, err)
		}
	}
	blocks, err := uintParam(cfg.Params, paramBlocks, 0)
	if err != nil {
		return nil, err
	}
	return mock.NewTicker(src, interval, blocks)
}

// GetCmd returns the command
func (Module) GetCmd(ctx *config.Context) *cobra.Command {
	return nil
}

func uintParam(params map[string]string, key string, defaultValue uint64) (uint64, error) {
	v, ok := params[key]
	if !ok {
		return defaultValue, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
