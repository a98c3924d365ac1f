package core

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
)

// TrackingID correlates an outgoing message unit with log output. It has no
// protocol meaning.
type TrackingID string

const (
	TrackingIDEthUpdateClient TrackingID = "eth-update-client"
	TrackingIDCkbUpdateClient TrackingID = "ckb-update-client"
)

// TrackedMsgs is an ordered set of messages submitted as one atomic unit.
type TrackedMsgs struct {
	Msgs       []*codectypes.Any
	TrackingID TrackingID
}

// Len returns the number of messages in the unit.
func (tm TrackedMsgs) Len() int {
	return len(tm.Msgs)
}

// ClientStates returns the client states packed in the unit, skipping any
// message that does not carry one.
func (tm TrackedMsgs) ClientStates() []ibcexported.ClientState {
	var ret []ibcexported.ClientState
	for _, msg := range tm.Msgs {
		if cs, ok := msg.GetCachedValue().(ibcexported.ClientState); ok {
			ret = append(ret, cs)
		}
	}
	return ret
}

// LatestHeight returns the highest height among the client states in the
// unit. It returns false if the unit carries no client state.
func (tm TrackedMsgs) LatestHeight() (clienttypes.Height, bool) {
	var (
		latest clienttypes.Height
		found  bool
	)
	for _, cs := range tm.ClientStates() {
		h := cs.GetLatestHeight()
		height := clienttypes.NewHeight(h.GetRevisionNumber(), h.GetRevisionHeight())
		if !found || latest.LT(height) {
			latest, found = height, true
		}
	}
	return latest, found
}

// PackClientState wraps a client state into an Any for submission.
func PackClientState(cs ibcexported.ClientState) (*codectypes.Any, error) {
	return codectypes.NewAnyWithValue(cs)
}
