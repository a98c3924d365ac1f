package otelcore

import (
	"context"
	"fmt"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/hyperledger-labs/yui-header-relayer/otelcore/semconv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Chain records a span for every call to the wrapped ChainHandle.
type Chain struct {
	core.ChainHandle
	tracer trace.Tracer
}

var _ core.ChainHandle = (*Chain)(nil)

// NewChain wraps chain. The global tracer provider is used when tracer is nil.
func NewChain(chain core.ChainHandle, tracer trace.Tracer) core.ChainHandle {
	if tracer == nil {
		tracer = otel.Tracer("github.com/hyperledger-labs/yui-header-relayer/otelcore")
	}
	return &Chain{
		ChainHandle: chain,
		tracer:      tracer,
	}
}

func UnwrapChain(chain core.ChainHandle) (core.ChainHandle, error) {
	c, ok := chain.(*Chain)
	if !ok {
		return nil, fmt.Errorf("chain type is not %T, but %T", &Chain{}, chain)
	}
	return c.ChainHandle, nil
}

func (c *Chain) withChainAttributes() trace.SpanStartOption {
	return trace.WithAttributes(
		semconv.ChainIDKey.String(c.ChainID()),
		semconv.ChainRoleKey.String(string(c.Config().Role)),
	)
}

func (c *Chain) BuildClientState(ctx context.Context, height clienttypes.Height, settings core.ClientSettings) (ibcexported.ClientState, error) {
	ctx, span := c.tracer.Start(ctx, "Chain.BuildClientState",
		c.withChainAttributes(),
		trace.WithAttributes(
			semconv.HeightRevisionNumberKey.String(fmt.Sprint(height.GetRevisionNumber())),
			semconv.HeightRevisionHeightKey.String(fmt.Sprint(height.GetRevisionHeight())),
		),
	)
	defer span.End()

	cs, err := c.ChainHandle.BuildClientState(ctx, height, settings)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return cs, err
}

func (c *Chain) QueryClients(ctx context.Context, req core.PageRequest) ([]core.IdentifiedClientState, error) {
	ctx, span := c.tracer.Start(ctx, "Chain.QueryClients",
		c.withChainAttributes(),
		trace.WithAttributes(
			semconv.PageOffsetKey.Int64(int64(req.Offset)),
			semconv.PageLimitKey.Int64(int64(req.Limit)),
		),
	)
	defer span.End()

	states, err := c.ChainHandle.QueryClients(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return states, err
}

func (c *Chain) SendMessagesAndWaitCommit(ctx context.Context, msgs core.TrackedMsgs) ([]core.EventWithHeight, error) {
	ctx, span := c.tracer.Start(ctx, "Chain.SendMessagesAndWaitCommit",
		c.withChainAttributes(),
		trace.WithAttributes(
			semconv.TrackingIDKey.String(string(msgs.TrackingID)),
			semconv.MessageCountKey.Int(msgs.Len()),
		),
	)
	defer span.End()

	events, err := c.ChainHandle.SendMessagesAndWaitCommit(ctx, msgs)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return events, err
}
