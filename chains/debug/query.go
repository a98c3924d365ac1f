package debug

import (
	"context"
	"fmt"
	"os"
	"strconv"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
	"github.com/hyperledger-labs/yui-header-relayer/core"
)

// debugFakeQueryFailure fails every query while DEBUG_RELAYER_QUERY_CLIENTS_FAIL_<chainID> is set.
func debugFakeQueryFailure(ctx context.Context, chain *Chain) error {
	env := fmt.Sprintf("DEBUG_RELAYER_QUERY_CLIENTS_FAIL_%s", chain.ChainID())
	if val, ok := os.LookupEnv(env); ok {
		debugLogger(chain).InfoContext(ctx, "debug env found", "env", env, "value", val)
		return fmt.Errorf("fake query failure: %s=%q", env, val)
	}
	return nil
}

// debugFakeMissingHeader fails to build the client state at the height given
// by DEBUG_RELAYER_MISSING_HEADER_HEIGHT_<chainID>.
func debugFakeMissingHeader(ctx context.Context, chain *Chain, height clienttypes.Height) error {
	env := fmt.Sprintf("DEBUG_RELAYER_MISSING_HEADER_HEIGHT_%s", chain.ChainID())
	if val, ok := os.LookupEnv(env); ok {
		logger := debugLogger(chain)
		logger.InfoContext(ctx, "debug env found", "env", env, "value", val)

		missing, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			logger.ErrorContext(ctx, "malformed debug env", err, "env", env)
			return nil
		}
		if height.GetRevisionHeight() == missing {
			return fmt.Errorf("fake missing header: %v", height)
		}
	}
	return nil
}

func (c *Chain) QueryClients(ctx context.Context, req core.PageRequest) ([]core.IdentifiedClientState, error) {
	if err := debugFakeQueryFailure(ctx, c); err != nil {
		return nil, err
	}
	return c.OriginChain.QueryClients(ctx, req)
}

func (c *Chain) BuildClientState(ctx context.Context, height clienttypes.Height, settings core.ClientSettings) (ibcexported.ClientState, error) {
	if err := debugFakeMissingHeader(ctx, c, height); err != nil {
		return nil, err
	}
	return c.OriginChain.BuildClientState(ctx, height, settings)
}
