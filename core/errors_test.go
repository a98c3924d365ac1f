package core_test

import (
	"errors"
	"fmt"
	"testing"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger-labs/yui-header-relayer/core"
)

func TestGapHeight(t *testing.T) {
	tip := clienttypes.NewHeight(1, 50)
	cases := []struct {
		name    string
		err     error
		wantGap bool
	}{
		{"gap", core.NewMissingLastBlockIDError(tip), true},
		{"wrapped gap", fmt.Errorf("send tx: %w", core.NewMissingLastBlockIDError(tip)), true},
		{"nil", nil, false},
		{"plain", errors.New("missing last block id"), false},
		{"other verification failure", &core.LightClientVerificationError{Source: errors.New("bad proof")}, false},
		{"bare missing block id", &core.MissingLastBlockIDError{Height: tip}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, ok := core.GapHeight(c.err)
			require.Equal(t, c.wantGap, ok)
			if c.wantGap {
				require.Equal(t, tip, h)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		core.ErrConfigMismatch,
		core.ErrEmptyBatch,
		core.ErrClientStateBuild,
		core.ErrUnexpectedSubmission,
		core.ErrSourceQuery,
		core.ErrRetryExhausted,
		core.ErrUnknownClientType,
		core.ErrEmptyPage,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			require.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}
