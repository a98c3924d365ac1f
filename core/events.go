package core

import (
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
)

// EventKind is the type of an event observed on a chain.
type EventKind int

const (
	EventKindNewBlock EventKind = iota + 1
	EventKindCreateClient
	EventKindUpdateClient
	EventKindSendPacket
	EventKindChainError
)

func (k EventKind) String() string {
	switch k {
	case EventKindNewBlock:
		return "NewBlock"
	case EventKindCreateClient:
		return "CreateClient"
	case EventKindUpdateClient:
		return "UpdateClient"
	case EventKindSendPacket:
		return "SendPacket"
	case EventKindChainError:
		return "ChainError"
	default:
		return "Unknown"
	}
}

// Event is a single observation at a height of the source chain.
type Event struct {
	Kind   EventKind
	Height clienttypes.Height
}

// EventBatch is an ordered set of events delivered together by an event monitor.
// Height is the height of the batch itself.
type EventBatch struct {
	ChainID string
	Height  clienttypes.Height
	Events  []Event
}

// NewBlockEvents returns the NewBlock events of the batch in their original order.
func (b *EventBatch) NewBlockEvents() []Event {
	var ret []Event
	for _, ev := range b.Events {
		if ev.Kind == EventKindNewBlock {
			ret = append(ret, ev)
		}
	}
	return ret
}

// NewBlockBatch returns a batch of NewBlock events at the given heights.
func NewBlockBatch(chainID string, batchHeight clienttypes.Height, heights ...uint64) *EventBatch {
	events := make([]Event, 0, len(heights))
	for _, h := range heights {
		events = append(events, Event{
			Kind:   EventKindNewBlock,
			Height: clienttypes.NewHeight(batchHeight.GetRevisionNumber(), h),
		})
	}
	return &EventBatch{
		ChainID: chainID,
		Height:  batchHeight,
		Events:  events,
	}
}
