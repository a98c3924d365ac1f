package coreutil

import (
	"fmt"

	"github.com/hyperledger-labs/yui-header-relayer/chains/debug"
	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/hyperledger-labs/yui-header-relayer/otelcore"
)

// UnwrapChain finds the first chain handle under the known decorators that
// matches the specified type argument.
//
// In the following example, UnwrapChain returns the *mock.SourceChain behind
// tracing and failure injection:
//
//	chain, err := coreutil.UnwrapChain[*mock.SourceChain](handle)
func UnwrapChain[C core.ChainHandle](c core.ChainHandle) (C, error) {
	chain := c
	for {
		switch unwrapped := chain.(type) {
		case C:
			return unwrapped, nil
		case *otelcore.Chain:
			chain = unwrapped.ChainHandle
		case *debug.Chain:
			chain = unwrapped.OriginChain
		default:
			var zero C
			return zero, fmt.Errorf("failed to unwrap chain: expected=%T, actual=%T", zero, unwrapped)
		}
	}
}
