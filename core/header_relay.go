package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/hyperledger-labs/yui-header-relayer/internal/telemetry"
	"github.com/hyperledger-labs/yui-header-relayer/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// MaxHeadersInBatch bounds the number of client states fetched and submitted per chase page.
	MaxHeadersInBatch uint64 = 32
	// RetrySleepInterval is the wait before retrying a page the destination could not link to its tip.
	RetrySleepInterval = 12 * time.Second
	// MaxRetryNumber is the number of consecutive failed pages after which a relay is abandoned.
	MaxRetryNumber uint = 5
)

// RelayProgress is the state of the chase loop. StartHeight is the next height
// to relay, TargetHeight the batch height the loop runs up to, and RetryCount
// the number of consecutive failed attempts on the current page.
type RelayProgress struct {
	StartHeight  uint64
	TargetHeight uint64
	RetryCount   uint
}

func NewRelayProgress(startHeight, targetHeight uint64) RelayProgress {
	return RelayProgress{StartHeight: startHeight, TargetHeight: targetHeight}
}

// Done reports whether the loop has reached TargetHeight.
func (p RelayProgress) Done() bool {
	return p.StartHeight >= p.TargetHeight
}

// PageSize returns the number of client states to request for the next page.
// The page includes TargetHeight itself.
func (p RelayProgress) PageSize() uint64 {
	if p.Done() {
		return 0
	}
	return min(MaxHeadersInBatch, p.TargetHeight-p.StartHeight+1)
}

// Advance moves past fetched relayed heights and resets the retry count.
func (p RelayProgress) Advance(fetched uint64) RelayProgress {
	p.StartHeight += fetched
	p.RetryCount = 0
	return p
}

// Retry records a failed attempt on the current page.
func (p RelayProgress) Retry() RelayProgress {
	p.RetryCount++
	return p
}

// Exhausted reports whether the retry budget is used up.
func (p RelayProgress) Exhausted() bool {
	return p.RetryCount >= MaxRetryNumber
}

func (p RelayProgress) attributes() []trace.EventOption {
	return []trace.EventOption{trace.WithAttributes(
		AttributeKeyStartHeight.Int64(int64(p.StartHeight)),
		AttributeKeyTargetHeight.Int64(int64(p.TargetHeight)),
		AttributeKeyRetryCount.Int(int(p.RetryCount)),
	)}
}

// WaitFunc blocks for d or until ctx is done, whichever comes first.
type WaitFunc func(ctx context.Context, d time.Duration) error

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// HeaderRelayer moves headers of a source chain into the light client hosted on
// a destination chain and catches up when the destination has fallen behind.
// A HeaderRelayer holds no per-relay state and may be shared between workers.
type HeaderRelayer struct {
	srcRole    ChainRole
	dstRole    ChainRole
	trackingID TrackingID
	wait       WaitFunc
}

type HeaderRelayerOption func(*HeaderRelayer)

// WithSourceRole sets the role the source chain must have. Defaults to eth.
func WithSourceRole(role ChainRole) HeaderRelayerOption {
	return func(hr *HeaderRelayer) {
		hr.srcRole = role
	}
}

// WithDestinationRole sets the role the destination chain must have. Defaults to ckb.
func WithDestinationRole(role ChainRole) HeaderRelayerOption {
	return func(hr *HeaderRelayer) {
		hr.dstRole = role
	}
}

// WithWaitFunc replaces the backoff wait between retries.
func WithWaitFunc(f WaitFunc) HeaderRelayerOption {
	return func(hr *HeaderRelayer) {
		hr.wait = f
	}
}

func NewHeaderRelayer(opts ...HeaderRelayerOption) *HeaderRelayer {
	hr := &HeaderRelayer{
		srcRole:    ChainRoleEth,
		dstRole:    ChainRoleCkb,
		trackingID: TrackingIDEthUpdateClient,
		wait:       wait,
	}
	for _, opt := range opts {
		opt(hr)
	}
	return hr
}

// RelayHeaders relays the headers of batch from src to dst with the default HeaderRelayer.
func RelayHeaders(ctx context.Context, src, dst ChainHandle, batch *EventBatch) error {
	return NewHeaderRelayer().Relay(ctx, src, dst, batch)
}

// Relay submits the client states of the NewBlock events of batch to dst. If dst
// reports that its light client tip is behind the submitted headers, the missing
// client states are fetched from src page by page until the batch height is
// reached or the retry budget runs out.
//
// An empty batch is not an error. Every other terminal failure is logged and returned.
func (hr *HeaderRelayer) Relay(ctx context.Context, src, dst ChainHandle, batch *EventBatch) error {
	ctx, span := tracer.Start(ctx, "HeaderRelayer.Relay", WithChainPairAttributes(src, dst), withPackage(hr))
	defer span.End()
	logger := GetChainPairLogger(src, dst)

	outcome, err := hr.relay(ctx, logger, src, dst, batch)

	telemetry.RelaysCounter.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttributeKeyChainID.String(dst.ChainID()),
		telemetry.AttributeKeyOutcome.String(outcome),
	))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (hr *HeaderRelayer) relay(ctx context.Context, logger *log.RelayLogger, src, dst ChainHandle, batch *EventBatch) (string, error) {
	if err := hr.checkRoles(src, dst); err != nil {
		logger.ErrorContext(ctx, "ignore header relay while src chain or dst chain has an unexpected role", err,
			"src_role", src.Config().Role,
			"dst_role", dst.Config().Role,
		)
		return telemetry.OutcomeConfigError, err
	}

	if batch == nil || len(batch.Events) == 0 {
		logger.WarnContext(ctx, "CAUTION: start to relay EMPTY headers", "reason", ErrEmptyBatch.Error())
		return telemetry.OutcomeEmpty, nil
	}

	startSlot, endSlot := uint64(0), batch.Height.GetRevisionHeight()
	if events := batch.NewBlockEvents(); len(events) > 0 {
		startSlot = events[0].Height.GetRevisionHeight()
	}
	logger.InfoContext(ctx, "start to relay headers", "start_slot", startSlot, "end_slot", endSlot)

	msgs := hr.buildClientStates(ctx, logger, src, batch)
	_, err := dst.SendMessagesAndWaitCommit(ctx, msgs)
	if err == nil {
		hr.recordRelayed(ctx, dst, msgs)
		logger.InfoContext(ctx, "finish relay headers", "start_slot", startSlot, "end_slot", endSlot)
		return telemetry.OutcomeDirect, nil
	}

	tip, ok := GapHeight(err)
	if !ok {
		logger.ErrorContext(ctx, "receive unexpected error", err)
		return telemetry.OutcomeUnexpected, fmt.Errorf("%w: %w", ErrUnexpectedSubmission, err)
	}
	logger.WarnContext(ctx, "header is beyond onchain or native tip header, start to chase",
		"start_slot", startSlot,
		"tip", tip.GetRevisionHeight(),
	)
	telemetry.DestinationTipGauge.Set(int64(tip.GetRevisionHeight()), telemetry.AttributeKeyChainID.String(dst.ChainID()))

	progress := NewRelayProgress(tip.GetRevisionHeight(), endSlot)
	if err := hr.chase(ctx, logger, src, dst, progress); err != nil {
		switch {
		case errors.Is(err, ErrSourceQuery):
			return telemetry.OutcomeQueryFailure, err
		case errors.Is(err, ErrRetryExhausted):
			return telemetry.OutcomeRetryExceeded, err
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return telemetry.OutcomeCanceled, err
		default:
			return telemetry.OutcomeUnexpected, err
		}
	}
	return telemetry.OutcomeChased, nil
}

func (hr *HeaderRelayer) checkRoles(src, dst ChainHandle) error {
	if srcRole, dstRole := src.Config().Role, dst.Config().Role; srcRole != hr.srcRole || dstRole != hr.dstRole {
		return ErrConfigMismatch.Wrapf("expected %s -> %s but got %s -> %s", hr.srcRole, hr.dstRole, srcRole, dstRole)
	}
	return nil
}

// buildClientStates builds a client state for every NewBlock event of batch.
// A client state that cannot be built or packed is logged and left out.
func (hr *HeaderRelayer) buildClientStates(ctx context.Context, logger *log.RelayLogger, src ChainHandle, batch *EventBatch) TrackedMsgs {
	msgs := TrackedMsgs{TrackingID: hr.trackingID}
	for _, ev := range batch.NewBlockEvents() {
		cs, err := src.BuildClientState(ctx, ev.Height, ClientSettingsOther)
		if err == nil {
			var packed *codectypes.Any
			if packed, err = PackClientState(cs); err == nil {
				msgs.Msgs = append(msgs.Msgs, packed)
				continue
			}
		}
		logger.ErrorContext(ctx, "failed to build client state", fmt.Errorf("%w: %w", ErrClientStateBuild, err),
			"height", ev.Height.String(),
		)
		telemetry.HeadersDroppedCounter.Add(ctx, 1, metric.WithAttributes(telemetry.AttributeKeyChainID.String(src.ChainID())))
	}
	return msgs
}

// chase runs the catch-up loop from progress until it is done. A returned error
// is terminal.
func (hr *HeaderRelayer) chase(ctx context.Context, logger *log.RelayLogger, src, dst ChainHandle, progress RelayProgress) error {
	span := trace.SpanFromContext(ctx)
	for !progress.Done() {
		if progress.RetryCount > 0 {
			logger.InfoContext(ctx, "retry to chase headers",
				"retry", progress.RetryCount,
				"start_height", progress.StartHeight,
				"target_height", progress.TargetHeight,
			)
		} else {
			logger.InfoContext(ctx, "continue to chase headers",
				"start_height", progress.StartHeight,
				"target_height", progress.TargetHeight,
			)
		}
		span.AddEvent("chase", progress.attributes()...)

		var err error
		if progress, err = hr.step(ctx, logger, src, dst, progress); err != nil {
			return err
		}
		if progress.Exhausted() {
			err := fmt.Errorf("%w: retry number %d reached maximum value %d", ErrRetryExhausted, progress.RetryCount, MaxRetryNumber)
			logger.ErrorContext(ctx, "stop retry process", err,
				"start_height", progress.StartHeight,
				"target_height", progress.TargetHeight,
			)
			return err
		}
	}
	logger.InfoContext(ctx, "finish chasing headers", "target_height", progress.TargetHeight)
	return nil
}

// step fetches one page of client states from src and submits it to dst. A
// failed submission is counted on the returned progress; only errors that end
// the relay are returned.
func (hr *HeaderRelayer) step(ctx context.Context, logger *log.RelayLogger, src, dst ChainHandle, progress RelayProgress) (RelayProgress, error) {
	limit := progress.PageSize()
	states, err := src.QueryClients(ctx, PageRequest{Offset: progress.StartHeight, Limit: limit})
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSourceQuery, err)
		logger.ErrorContext(ctx, "failed to query client states", err, "offset", progress.StartHeight, "limit", limit)
		return progress, err
	}
	if uint64(len(states)) > limit {
		states = states[:limit]
	}
	fetched := uint64(len(states))
	if fetched < limit {
		logger.WarnContext(ctx, "can't find enough headers to relay", "expected", limit, "fetched", fetched)
	}
	if fetched == 0 {
		hr.recordRetry(ctx, dst)
		logger.WarnContext(ctx, "nothing to relay, wait retry", "reason", ErrEmptyPage.Error(), "offset", progress.StartHeight)
		return progress.Retry(), hr.backoff(ctx)
	}

	msgs := TrackedMsgs{TrackingID: hr.trackingID}
	for _, s := range states {
		packed, err := PackClientState(s.ClientState)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrClientStateBuild, err)
			logger.ErrorContext(ctx, "failed to pack client state and retry", err, "client_id", s.ClientID)
			hr.recordRetry(ctx, dst)
			return progress.Retry(), nil
		}
		msgs.Msgs = append(msgs.Msgs, packed)
	}

	endHeight := progress.StartHeight + fetched - 1
	logger.InfoContext(ctx, "send chased headers", "from", progress.StartHeight, "to", endHeight)
	if _, err := dst.SendMessagesAndWaitCommit(ctx, msgs); err != nil {
		logger.ErrorContext(ctx, "encounter error and wait retry", err, "from", progress.StartHeight, "to", endHeight)
		hr.recordRetry(ctx, dst)
		progress = progress.Retry()
		if _, ok := GapHeight(err); ok {
			return progress, hr.backoff(ctx)
		}
		return progress, nil
	}

	logger.InfoContext(ctx, "headers are relayed", "from", progress.StartHeight, "to", endHeight)
	hr.recordRelayed(ctx, dst, msgs)
	return progress.Advance(fetched), nil
}

func (hr *HeaderRelayer) backoff(ctx context.Context) error {
	if err := hr.wait(ctx, RetrySleepInterval); err != nil {
		return fmt.Errorf("interrupted while waiting to retry: %w", err)
	}
	return nil
}

// recordRelayed counts the committed headers of msgs and moves the destination
// tip gauge to the highest of them. An empty unit leaves the gauge untouched.
func (hr *HeaderRelayer) recordRelayed(ctx context.Context, dst ChainHandle, msgs TrackedMsgs) {
	attr := telemetry.AttributeKeyChainID.String(dst.ChainID())
	telemetry.HeadersRelayedCounter.Add(ctx, int64(msgs.Len()), metric.WithAttributes(attr))
	if height, ok := msgs.LatestHeight(); ok {
		telemetry.DestinationTipGauge.Set(int64(height.GetRevisionHeight()), attr)
	}
}

func (hr *HeaderRelayer) recordRetry(ctx context.Context, dst ChainHandle) {
	telemetry.ChaseRetriesCounter.Add(ctx, 1, metric.WithAttributes(telemetry.AttributeKeyChainID.String(dst.ChainID())))
}

func GetChainPairLogger(src, dst ChainHandle) *log.RelayLogger {
	return log.GetLogger().
		WithChainPair(src.ChainID(), dst.ChainID()).
		WithModule("core.header-relay")
}
