package debug_test

import (
	"context"
	"testing"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hyperledger-labs/yui-header-relayer/chains/debug"
	"github.com/hyperledger-labs/yui-header-relayer/core"
)

func newDebugChain(t *testing.T) (*debug.Chain, *core.MockChainHandle) {
	ctrl := gomock.NewController(t)
	origin := core.NewMockChainHandle(ctrl)
	origin.EXPECT().ChainID().Return("ckb0").AnyTimes()
	return debug.NewChain(origin), origin
}

func TestSendFailure(t *testing.T) {
	t.Setenv("DEBUG_RELAYER_SEND_FAIL_ckb0", "2")
	chain, origin := newDebugChain(t)
	origin.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := chain.SendMessagesAndWaitCommit(ctx, core.TrackedMsgs{})
		require.Error(t, err)
		_, ok := core.GapHeight(err)
		require.False(t, ok)
	}
	_, err := chain.SendMessagesAndWaitCommit(ctx, core.TrackedMsgs{})
	require.NoError(t, err)
}

func TestSendFailureMalformed(t *testing.T) {
	t.Setenv("DEBUG_RELAYER_SEND_FAIL_ckb0", "many")
	chain, origin := newDebugChain(t)
	origin.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := chain.SendMessagesAndWaitCommit(context.Background(), core.TrackedMsgs{})
	require.NoError(t, err)
}

func TestQueryClientsFailure(t *testing.T) {
	chain, origin := newDebugChain(t)
	origin.EXPECT().QueryClients(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := chain.QueryClients(context.Background(), core.PageRequest{Offset: 1, Limit: 1})
	require.NoError(t, err)

	t.Setenv("DEBUG_RELAYER_QUERY_CLIENTS_FAIL_ckb0", "1")
	_, err = chain.QueryClients(context.Background(), core.PageRequest{Offset: 1, Limit: 1})
	require.ErrorContains(t, err, "fake query failure")
}

func TestMissingHeader(t *testing.T) {
	t.Setenv("DEBUG_RELAYER_MISSING_HEADER_HEIGHT_ckb0", "41")
	chain, origin := newDebugChain(t)
	origin.EXPECT().BuildClientState(gomock.Any(), clienttypes.NewHeight(0, 40), core.ClientSettingsOther).Return(nil, nil)

	_, err := chain.BuildClientState(context.Background(), clienttypes.NewHeight(0, 40), core.ClientSettingsOther)
	require.NoError(t, err)
	_, err = chain.BuildClientState(context.Background(), clienttypes.NewHeight(0, 41), core.ClientSettingsOther)
	require.ErrorContains(t, err, "fake missing header")
}
