package core_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
	mocktypes "github.com/datachainlab/ibc-mock-client/modules/light-clients/xx-mock/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/hyperledger-labs/yui-header-relayer/internal/telemetry"
)

type waitRecorder struct {
	calls []time.Duration
	err   error
}

func (w *waitRecorder) wait(_ context.Context, d time.Duration) error {
	w.calls = append(w.calls, d)
	return w.err
}

func mockClientState(height uint64) ibcexported.ClientState {
	return &mocktypes.ClientState{LatestHeight: clienttypes.NewHeight(0, height)}
}

func clientStatePage(from, n uint64) []core.IdentifiedClientState {
	ret := make([]core.IdentifiedClientState, 0, n)
	for h := from; h < from+n; h++ {
		ret = append(ret, core.IdentifiedClientState{
			ClientID:    fmt.Sprintf("07-ethereum-%d", h),
			ClientState: mockClientState(h),
		})
	}
	return ret
}

func submittedHeights(msgs core.TrackedMsgs) []uint64 {
	var ret []uint64
	for _, cs := range msgs.ClientStates() {
		ret = append(ret, cs.GetLatestHeight().GetRevisionHeight())
	}
	return ret
}

func heightRange(from, to uint64) []uint64 {
	var ret []uint64
	for h := from; h <= to; h++ {
		ret = append(ret, h)
	}
	return ret
}

func newMockChainPair(ctrl *gomock.Controller, srcRole, dstRole core.ChainRole) (*core.MockChainHandle, *core.MockChainHandle) {
	src := core.NewMockChainHandle(ctrl)
	src.EXPECT().ChainID().Return("eth0").AnyTimes()
	src.EXPECT().Config().Return(core.ChainInfo{ChainID: "eth0", Role: srcRole}).AnyTimes()
	dst := core.NewMockChainHandle(ctrl)
	dst.EXPECT().ChainID().Return("ckb0").AnyTimes()
	dst.EXPECT().Config().Return(core.ChainInfo{ChainID: "ckb0", Role: dstRole}).AnyTimes()
	return src, dst
}

func expectBuildClientStates(src *core.MockChainHandle) {
	src.EXPECT().BuildClientState(gomock.Any(), gomock.Any(), core.ClientSettingsOther).DoAndReturn(
		func(_ context.Context, height clienttypes.Height, _ core.ClientSettings) (ibcexported.ClientState, error) {
			return mockClientState(height.GetRevisionHeight()), nil
		},
	).AnyTimes()
}

func gapAt(tip uint64) error {
	return core.NewMissingLastBlockIDError(clienttypes.NewHeight(0, tip))
}

func TestRelayHeadersChasesGap(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
	expectBuildClientStates(src)

	var sent [][]uint64
	record := func(_ context.Context, msgs core.TrackedMsgs) ([]core.EventWithHeight, error) {
		assert.Equal(t, core.TrackingIDEthUpdateClient, msgs.TrackingID)
		sent = append(sent, submittedHeights(msgs))
		return nil, nil
	}

	gomock.InOrder(
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs core.TrackedMsgs) ([]core.EventWithHeight, error) {
				sent = append(sent, submittedHeights(msgs))
				return nil, gapAt(50)
			},
		),
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 50, Limit: 32}).Return(clientStatePage(50, 32), nil),
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).DoAndReturn(record),
		// the last page includes the batch height but the source returns one record short
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 82, Limit: 19}).Return(clientStatePage(82, 18), nil),
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).DoAndReturn(record),
	)

	w := &waitRecorder{}
	hr := core.NewHeaderRelayer(core.WithWaitFunc(w.wait))
	err := hr.Relay(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 100), 40, 41, 42))
	require.NoError(t, err)

	require.Len(t, sent, 3)
	assert.Equal(t, []uint64{40, 41, 42}, sent[0])
	assert.Equal(t, heightRange(50, 81), sent[1])
	assert.Equal(t, heightRange(82, 99), sent[2])
	assert.Empty(t, w.calls)
}

func TestRelayHeadersDirectSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
	expectBuildClientStates(src)

	dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs core.TrackedMsgs) ([]core.EventWithHeight, error) {
			assert.Equal(t, []uint64{7, 8}, submittedHeights(msgs))
			return nil, nil
		},
	)

	batch := core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 8), 7, 8)
	batch.Events = append(batch.Events, core.Event{Kind: core.EventKindSendPacket, Height: clienttypes.NewHeight(0, 8)})
	require.NoError(t, core.NewHeaderRelayer().Relay(context.Background(), src, dst, batch))
}

func TestRelayHeadersEmptyBatch(t *testing.T) {
	for name, batch := range map[string]*core.EventBatch{
		"nil":       nil,
		"no events": {ChainID: "eth0", Height: clienttypes.NewHeight(0, 10)},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
			require.NoError(t, core.RelayHeaders(context.Background(), src, dst, batch))
		})
	}
}

func TestRelayHeadersRoleMismatch(t *testing.T) {
	cases := []struct {
		name             string
		srcRole, dstRole core.ChainRole
	}{
		{"source is not eth", core.ChainRoleAxon, core.ChainRoleCkb},
		{"destination is not ckb", core.ChainRoleEth, core.ChainRoleCosmos},
		{"swapped", core.ChainRoleCkb, core.ChainRoleEth},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			src, dst := newMockChainPair(ctrl, c.srcRole, c.dstRole)
			err := core.RelayHeaders(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 5), 5))
			require.ErrorIs(t, err, core.ErrConfigMismatch)
		})
	}
}

func TestRelayHeadersCustomRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleAxon, core.ChainRoleCkb)
	expectBuildClientStates(src)
	dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, nil)

	hr := core.NewHeaderRelayer(core.WithSourceRole(core.ChainRoleAxon), core.WithDestinationRole(core.ChainRoleCkb))
	require.NoError(t, hr.Relay(context.Background(), src, dst, core.NewBlockBatch("axon0", clienttypes.NewHeight(0, 3), 3)))
}

func TestRelayHeadersUnexpectedFailure(t *testing.T) {
	cases := map[string]error{
		"plain error":                   errors.New("connection reset"),
		"other verification failure":    &core.LightClientVerificationError{Source: errors.New("invalid signature")},
		"missing block id not verified": fmt.Errorf("wrapped: %w", &core.MissingLastBlockIDError{Height: clienttypes.NewHeight(0, 3)}),
	}
	for name, sendErr := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
			expectBuildClientStates(src)
			dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, sendErr)

			err := core.RelayHeaders(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 10), 9, 10))
			require.ErrorIs(t, err, core.ErrUnexpectedSubmission)
			require.ErrorIs(t, err, sendErr)
		})
	}
}

func TestRelayHeadersSourceQueryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
	expectBuildClientStates(src)

	queryErr := errors.New("rpc unavailable")
	gomock.InOrder(
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(50)),
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 50, Limit: 32}).Return(nil, queryErr),
	)

	w := &waitRecorder{}
	err := core.NewHeaderRelayer(core.WithWaitFunc(w.wait)).
		Relay(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 100), 99))
	require.ErrorIs(t, err, core.ErrSourceQuery)
	require.ErrorIs(t, err, queryErr)
	assert.Empty(t, w.calls)
}

func TestRelayHeadersRetryExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
	expectBuildClientStates(src)

	dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(50)).Times(1 + int(core.MaxRetryNumber))
	src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 50, Limit: 32}).
		Return(clientStatePage(50, 32), nil).
		Times(int(core.MaxRetryNumber))

	w := &waitRecorder{}
	err := core.NewHeaderRelayer(core.WithWaitFunc(w.wait)).
		Relay(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 100), 99))
	require.ErrorIs(t, err, core.ErrRetryExhausted)
	require.Len(t, w.calls, int(core.MaxRetryNumber))
	for _, d := range w.calls {
		assert.Equal(t, core.RetrySleepInterval, d)
	}
}

func TestRelayHeadersRetriesWithoutBackoffOnOtherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
	expectBuildClientStates(src)

	gomock.InOrder(
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(10)),
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 10, Limit: 6}).Return(clientStatePage(10, 6), nil),
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, errors.New("mempool full")),
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 10, Limit: 6}).Return(clientStatePage(10, 6), nil),
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, nil),
	)

	w := &waitRecorder{}
	err := core.NewHeaderRelayer(core.WithWaitFunc(w.wait)).
		Relay(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 15), 15))
	require.NoError(t, err)
	assert.Empty(t, w.calls)
}

func TestRelayHeadersShortPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
	expectBuildClientStates(src)

	var sent [][]uint64
	record := func(_ context.Context, msgs core.TrackedMsgs) ([]core.EventWithHeight, error) {
		sent = append(sent, submittedHeights(msgs))
		return nil, nil
	}
	gomock.InOrder(
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(50)),
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 50, Limit: 21}).Return(clientStatePage(50, 10), nil),
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).DoAndReturn(record),
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 60, Limit: 11}).Return(clientStatePage(60, 12), nil),
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).DoAndReturn(record),
	)

	err := core.NewHeaderRelayer(core.WithWaitFunc((&waitRecorder{}).wait)).
		Relay(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 70), 70))
	require.NoError(t, err)
	require.Len(t, sent, 2)
	assert.Equal(t, heightRange(50, 59), sent[0])
	// records beyond the requested limit are not submitted
	assert.Equal(t, heightRange(60, 70), sent[1])
}

func TestRelayHeadersEmptyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
	expectBuildClientStates(src)

	gomock.InOrder(
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(20)),
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 20, Limit: 3}).Return(nil, nil),
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 20, Limit: 3}).Return(clientStatePage(20, 3), nil),
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, nil),
	)

	w := &waitRecorder{}
	err := core.NewHeaderRelayer(core.WithWaitFunc(w.wait)).
		Relay(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 22), 22))
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{core.RetrySleepInterval}, w.calls)
}

func TestRelayHeadersRetriesUnpackablePage(t *testing.T) {
	unpackable := []core.IdentifiedClientState{{ClientID: "07-ethereum-10"}}

	t.Run("recovers on the next attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
		expectBuildClientStates(src)

		gomock.InOrder(
			dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(10)),
			src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 10, Limit: 3}).Return(unpackable, nil),
			src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 10, Limit: 3}).Return(clientStatePage(10, 3), nil),
			dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, nil),
		)

		w := &waitRecorder{}
		err := core.NewHeaderRelayer(core.WithWaitFunc(w.wait)).
			Relay(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 12), 12))
		require.NoError(t, err)
		assert.Empty(t, w.calls)
	})

	t.Run("exhausts the retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
		expectBuildClientStates(src)

		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(10))
		src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 10, Limit: 3}).
			Return(unpackable, nil).
			Times(int(core.MaxRetryNumber))

		w := &waitRecorder{}
		err := core.NewHeaderRelayer(core.WithWaitFunc(w.wait)).
			Relay(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 12), 12))
		require.ErrorIs(t, err, core.ErrRetryExhausted)
		assert.Empty(t, w.calls)
	})
}

func TestRelayHeadersDestinationTipGauge(t *testing.T) {
	newPair := func(ctrl *gomock.Controller, dstID string) (*core.MockChainHandle, *core.MockChainHandle) {
		src := core.NewMockChainHandle(ctrl)
		src.EXPECT().ChainID().Return("eth0").AnyTimes()
		src.EXPECT().Config().Return(core.ChainInfo{ChainID: "eth0", Role: core.ChainRoleEth}).AnyTimes()
		dst := core.NewMockChainHandle(ctrl)
		dst.EXPECT().ChainID().Return(dstID).AnyTimes()
		dst.EXPECT().Config().Return(core.ChainInfo{ChainID: dstID, Role: core.ChainRoleCkb}).AnyTimes()
		return src, dst
	}
	tip := func(dstID string) (int64, bool) {
		return telemetry.DestinationTipGauge.Value(telemetry.AttributeKeyChainID.String(dstID))
	}

	t.Run("highest submitted header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src, dst := newPair(ctrl, "ckb-tip-dropped")
		src.EXPECT().BuildClientState(gomock.Any(), clienttypes.NewHeight(0, 42), core.ClientSettingsOther).
			Return(nil, errors.New("header not found"))
		expectBuildClientStates(src)
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, nil)

		err := core.RelayHeaders(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 42), 40, 41, 42))
		require.NoError(t, err)
		v, ok := tip("ckb-tip-dropped")
		require.True(t, ok)
		assert.Equal(t, int64(41), v)
	})

	t.Run("nothing submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src, dst := newPair(ctrl, "ckb-tip-empty")
		src.EXPECT().BuildClientState(gomock.Any(), gomock.Any(), core.ClientSettingsOther).
			Return(nil, errors.New("header not found"))
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, nil)

		err := core.RelayHeaders(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 9), 9))
		require.NoError(t, err)
		_, ok := tip("ckb-tip-empty")
		assert.False(t, ok)
	})

	t.Run("chased up to the batch height", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src, dst := newPair(ctrl, "ckb-tip-chased")
		expectBuildClientStates(src)
		gomock.InOrder(
			dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(20)),
			src.EXPECT().QueryClients(gomock.Any(), core.PageRequest{Offset: 20, Limit: 5}).Return(clientStatePage(20, 5), nil),
			dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, nil),
		)

		err := core.RelayHeaders(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 24), 24))
		require.NoError(t, err)
		v, ok := tip("ckb-tip-chased")
		require.True(t, ok)
		assert.Equal(t, int64(24), v)
	})
}

func TestRelayHeadersDropsUnbuildableClientStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)

	src.EXPECT().BuildClientState(gomock.Any(), clienttypes.NewHeight(0, 41), core.ClientSettingsOther).
		Return(nil, errors.New("header not found"))
	expectBuildClientStates(src)
	dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs core.TrackedMsgs) ([]core.EventWithHeight, error) {
			assert.Equal(t, []uint64{40, 42}, submittedHeights(msgs))
			return nil, nil
		},
	)

	err := core.RelayHeaders(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 42), 40, 41, 42))
	require.NoError(t, err)
}

func TestRelayHeadersTipAtTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
	expectBuildClientStates(src)
	dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(30))

	err := core.RelayHeaders(context.Background(), src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 30), 30))
	require.NoError(t, err)
}

func TestRelayHeadersCanceledWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	src, dst := newMockChainPair(ctrl, core.ChainRoleEth, core.ChainRoleCkb)
	expectBuildClientStates(src)

	gomock.InOrder(
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(10)),
		src.EXPECT().QueryClients(gomock.Any(), gomock.Any()).Return(clientStatePage(10, 5), nil),
		dst.EXPECT().SendMessagesAndWaitCommit(gomock.Any(), gomock.Any()).Return(nil, gapAt(9)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := core.RelayHeaders(ctx, src, dst, core.NewBlockBatch("eth0", clienttypes.NewHeight(0, 15), 15))
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), core.RetrySleepInterval)
}

func TestRelayProgress(t *testing.T) {
	p := core.NewRelayProgress(50, 100)
	require.False(t, p.Done())
	require.Equal(t, uint64(32), p.PageSize())

	p = p.Advance(32)
	require.Equal(t, core.RelayProgress{StartHeight: 82, TargetHeight: 100}, p)
	require.Equal(t, uint64(19), p.PageSize())

	for i := uint(1); i < core.MaxRetryNumber; i++ {
		p = p.Retry()
		require.Equal(t, i, p.RetryCount)
		require.False(t, p.Exhausted())
	}
	require.True(t, p.Retry().Exhausted())
	require.Equal(t, uint64(82), p.StartHeight)

	p = p.Advance(18)
	require.True(t, p.Done())
	require.Zero(t, p.RetryCount)
	require.Zero(t, p.PageSize())

	require.True(t, core.NewRelayProgress(60, 40).Done())
}

func TestRelayProgressPageSize(t *testing.T) {
	cases := map[string]struct {
		start, target uint64
		expected      uint64
	}{
		"capped":           {50, 100, 32},
		"exactly one page": {69, 100, 32},
		"last page":        {82, 100, 19},
		"one below target": {99, 100, 2},
		"from genesis":     {0, 2, 3},
		"at target":        {100, 100, 0},
		"beyond target":    {101, 100, 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.expected, core.NewRelayProgress(c.start, c.target).PageSize())
		})
	}
}
