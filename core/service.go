package core

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go"
)

var (
	rtyAttNum = uint(5)
	rtyAtt    = retry.Attempts(rtyAttNum)
	rtyDel    = retry.Delay(time.Millisecond * 400)
	rtyErr    = retry.LastErrorOnly(true)
)

// EventSource delivers the event batches observed on a source chain.
type EventSource interface {
	// Subscribe starts delivering batches. The returned channel is closed when
	// the source has no more batches or ctx is done.
	Subscribe(ctx context.Context) (<-chan *EventBatch, error)
}

// StartService starts a header relay service
func StartService(ctx context.Context, relayer *HeaderRelayer, src, dst ChainHandle, events EventSource) error {
	return NewHeaderRelayService(relayer, src, dst, events).Start(ctx)
}

type HeaderRelayService struct {
	relayer *HeaderRelayer
	src     ChainHandle
	dst     ChainHandle
	events  EventSource
}

// NewHeaderRelayService returns a new service
func NewHeaderRelayService(relayer *HeaderRelayer, src, dst ChainHandle, events EventSource) *HeaderRelayService {
	if relayer == nil {
		relayer = NewHeaderRelayer()
	}
	return &HeaderRelayService{
		relayer: relayer,
		src:     src,
		dst:     dst,
		events:  events,
	}
}

// Start subscribes to the event source and relays every delivered batch in
// order. It returns nil once the subscription is closed and ctx.Err() once ctx
// is done.
func (srv *HeaderRelayService) Start(ctx context.Context) error {
	logger := GetChainPairLogger(srv.src, srv.dst)

	var batches <-chan *EventBatch
	if err := retry.Do(func() error {
		var err error
		batches, err = srv.events.Subscribe(ctx)
		return err
	}, rtyAtt, rtyDel, rtyErr, retry.Context(ctx), retry.OnRetry(func(n uint, err error) {
		logger.InfoContext(ctx,
			"retrying to subscribe events",
			"try", n+1,
			"try_limit", rtyAttNum,
			"error", err.Error(),
		)
	})); err != nil {
		logger.ErrorContext(ctx, "failed to subscribe events", err)
		return err
	}

	return srv.Serve(ctx, batches)
}

// Serve relays batches until the channel is closed. A failed relay is logged
// and the next batch is processed, except for a role mismatch which fails on
// every batch and stops the service.
func (srv *HeaderRelayService) Serve(ctx context.Context, batches <-chan *EventBatch) error {
	logger := GetChainPairLogger(srv.src, srv.dst)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch, ok := <-batches:
			if !ok {
				logger.InfoContext(ctx, "event subscription closed")
				return nil
			}
			err := srv.relayer.Relay(ctx, srv.src, srv.dst, batch)
			switch {
			case err == nil:
			case errors.Is(err, ErrConfigMismatch):
				return err
			case ctx.Err() != nil:
				return ctx.Err()
			default:
				logger.WarnContext(ctx, "skip to the next event batch", "batch_height", batch.Height.String(), "error", err.Error())
			}
		}
	}
}
