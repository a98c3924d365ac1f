package module_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger-labs/yui-header-relayer/chains/mock"
	"github.com/hyperledger-labs/yui-header-relayer/chains/mock/module"
	"github.com/hyperledger-labs/yui-header-relayer/config"
	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/hyperledger-labs/yui-header-relayer/coreutil"
)

func newContext(t *testing.T) *config.Context {
	cfg := config.DefaultConfig(filepath.Join(t.TempDir(), "config.yaml"))
	cfg.Global.EnableTelemetry = true
	cfg.Chains[0].Debug = true
	cfg.Chains[0].Params = map[string]string{"tip": "1", "block-interval": "1ms", "blocks": "3"}
	return &config.Context{
		Modules: []config.ModuleI{module.Module{}},
		Codec:   codec.NewProtoCodec(mock.NewInterfaceRegistry()),
		Config:  &cfg,
	}
}

func TestServiceOverMockChains(t *testing.T) {
	ctx := newContext(t)
	src, dst, events, err := ctx.BuildRelay()
	require.NoError(t, err)

	require.NoError(t, core.StartService(context.Background(), nil, src, dst, events))

	source, err := coreutil.UnwrapChain[*mock.SourceChain](src)
	require.NoError(t, err)
	destination, err := coreutil.UnwrapChain[*mock.DestinationChain](dst)
	require.NoError(t, err)

	assert.Equal(t, clienttypes.NewHeight(0, 4), source.Tip())
	// the first batch is chased from genesis and the rest are relayed directly
	assert.Equal(t, source.Tip(), destination.Tip())
}

func TestBuildChainInvalidParams(t *testing.T) {
	ctx := newContext(t)
	ctx.Config.Chains[1].Params = map[string]string{"tip": "-1"}
	_, _, _, err := ctx.BuildRelay()
	require.ErrorContains(t, err, "invalid tip")

	ctx = newContext(t)
	ctx.Config.Chains[0].Params["block-interval"] = "soon"
	_, _, _, err = ctx.BuildRelay()
	require.ErrorContains(t, err, "invalid block-interval")
}

func TestBuildChainUnknownModule(t *testing.T) {
	ctx := newContext(t)
	ctx.Config.Chains[0].Module = "fabric"
	_, _, _, err := ctx.BuildRelay()
	require.ErrorContains(t, err, `module "fabric" is not registered`)
}
