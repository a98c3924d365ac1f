package config

import (
	"fmt"

	"github.com/hyperledger-labs/yui-header-relayer/chains/debug"
	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/hyperledger-labs/yui-header-relayer/otelcore"
)

type Chains []core.ChainHandle

// Get returns the chain for a given chain id
func (cs Chains) Get(chainID string) (core.ChainHandle, error) {
	for _, chain := range cs {
		if chainID == chain.ChainID() {
			return chain, nil
		}
	}
	return nil, fmt.Errorf("chain with ID %s is not configured", chainID)
}

// BuildChain builds the chain handle of cc with its module. Debug chains are
// wrapped for failure injection and every chain is traced when telemetry is on.
func (ctx *Context) BuildChain(cc ChainConfig) (core.ChainHandle, error) {
	m, err := ctx.Module(cc.Module)
	if err != nil {
		return nil, fmt.Errorf("chain %s: %w", cc.ChainID, err)
	}
	if _, _, err := cc.ResolveClientType(); err != nil {
		return nil, fmt.Errorf("chain %s: %w", cc.ChainID, err)
	}
	chain, err := m.BuildChain(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to build chain %s: %w", cc.ChainID, err)
	}
	if chain.ChainID() != cc.ChainID || chain.Config().Role != cc.Role {
		return nil, core.ErrConfigMismatch.Wrapf("module %s built %s/%s for %s/%s",
			cc.Module, chain.ChainID(), chain.Config().Role, cc.ChainID, cc.Role)
	}
	if cc.Debug {
		chain = debug.NewChain(chain)
	}
	if ctx.Config.Global.EnableTelemetry {
		chain = otelcore.NewChain(chain, nil)
	}
	return chain, nil
}

// BuildChains builds every configured chain.
func (ctx *Context) BuildChains() (Chains, error) {
	chains := make(Chains, 0, len(ctx.Config.Chains))
	for _, cc := range ctx.Config.Chains {
		chain, err := ctx.BuildChain(*cc)
		if err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}
	return chains, nil
}

// BuildRelay returns the source and destination chains of the relay config and
// the event source of the source chain.
func (ctx *Context) BuildRelay() (src, dst core.ChainHandle, events core.EventSource, err error) {
	if err := ctx.Config.Validate(); err != nil {
		return nil, nil, nil, err
	}
	chains, err := ctx.BuildChains()
	if err != nil {
		return nil, nil, nil, err
	}
	if src, err = chains.Get(ctx.Config.Relay.SrcChainID); err != nil {
		return nil, nil, nil, err
	}
	if dst, err = chains.Get(ctx.Config.Relay.DstChainID); err != nil {
		return nil, nil, nil, err
	}

	srcConfig, err := ctx.Config.GetChainConfig(src.ChainID())
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := ctx.Module(srcConfig.Module)
	if err != nil {
		return nil, nil, nil, err
	}
	if events, err = m.BuildEventSource(ctx, *srcConfig, src); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build event source of %s: %w", src.ChainID(), err)
	}
	return src, dst, events, nil
}
