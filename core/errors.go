package core

import (
	"errors"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
)

const ModuleName = "headerrelay"

// header relay sentinel errors
var (
	ErrConfigMismatch       = errorsmod.Register(ModuleName, 2, "chain role mismatch")
	ErrEmptyBatch           = errorsmod.Register(ModuleName, 3, "empty event batch")
	ErrClientStateBuild     = errorsmod.Register(ModuleName, 4, "failed to build client state")
	ErrUnexpectedSubmission = errorsmod.Register(ModuleName, 5, "unexpected submission failure")
	ErrSourceQuery          = errorsmod.Register(ModuleName, 6, "failed to query source chain")
	ErrRetryExhausted       = errorsmod.Register(ModuleName, 7, "retry budget exhausted")
	ErrUnknownClientType    = errorsmod.Register(ModuleName, 8, "unknown client type")
	ErrEmptyPage            = errorsmod.Register(ModuleName, 9, "source chain returned no client states")
)

// UnknownClientTypeError carries the raw value that failed to map to a ClientType.
type UnknownClientTypeError struct {
	Value string
}

func (e *UnknownClientTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownClientType.Error(), e.Value)
}

func (e *UnknownClientTypeError) Unwrap() error {
	return ErrUnknownClientType
}

// LightClientVerificationError is returned by a destination chain when its light
// client rejects submitted headers. Source holds the verifier's own failure.
type LightClientVerificationError struct {
	Source error
}

func (e *LightClientVerificationError) Error() string {
	return fmt.Sprintf("light client verification failed: %v", e.Source)
}

func (e *LightClientVerificationError) Unwrap() error {
	return e.Source
}

// MissingLastBlockIDError means the header preceding the submitted ones is not
// known to the light client. Height is the light client's current tip.
type MissingLastBlockIDError struct {
	Height clienttypes.Height
}

func (e *MissingLastBlockIDError) Error() string {
	return fmt.Sprintf("missing last block id: light client tip is %v", e.Height)
}

// NewMissingLastBlockIDError returns the verification failure reported when the
// submitted headers are ahead of the light client tip.
func NewMissingLastBlockIDError(tip clienttypes.Height) error {
	return &LightClientVerificationError{Source: &MissingLastBlockIDError{Height: tip}}
}

// GapHeight reports whether err is a light client verification failure caused
// by a missing last block id, and returns the tip it carries. Only the error
// structure is inspected.
func GapHeight(err error) (clienttypes.Height, bool) {
	var verr *LightClientVerificationError
	if !errors.As(err, &verr) {
		return clienttypes.Height{}, false
	}
	var missing *MissingLastBlockIDError
	if !errors.As(verr.Source, &missing) {
		return clienttypes.Height{}, false
	}
	return missing.Height, true
}
