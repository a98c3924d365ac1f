package telemetry

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/hyperledger-labs/yui-header-relayer/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	api "go.opentelemetry.io/otel/metric"
)

const (
	namespaceRoot = "relayer.header_relay"

	AttributeKeyOutcome = attribute.Key("outcome")
	AttributeKeyChainID = attribute.Key("chain_id")
)

// relay outcomes recorded on RelaysCounter
const (
	OutcomeDirect        = "direct"
	OutcomeChased        = "chased"
	OutcomeEmpty         = "empty"
	OutcomeConfigError   = "config_mismatch"
	OutcomeUnexpected    = "unexpected_failure"
	OutcomeQueryFailure  = "source_query_failure"
	OutcomeRetryExceeded = "retry_exhausted"
	OutcomeCanceled      = "canceled"
)

var (
	HeadersRelayedCounter api.Int64Counter
	HeadersDroppedCounter api.Int64Counter
	ChaseRetriesCounter   api.Int64Counter
	RelaysCounter         api.Int64Counter
	DestinationTipGauge   *Int64SyncGauge

	meter    = otel.Meter(name)
	initOnce sync.Once
	initErr  error
)

func init() {
	if err := InitializeMetrics(); err != nil {
		panic(err)
	}
}

// InitializeMetrics creates the instruments on the global meter. Instruments
// forward to whichever MeterProvider is installed later by SetupOTelSDK.
// Calling it more than once has no effect.
func InitializeMetrics() error {
	initOnce.Do(func() {
		initErr = initializeMetrics()
	})
	return initErr
}

func initializeMetrics() error {
	var err error

	name := fmt.Sprintf("%s.headers_relayed", namespaceRoot)
	if HeadersRelayedCounter, err = meter.Int64Counter(
		name,
		api.WithUnit("1"),
		api.WithDescription("number of headers committed on the destination chain"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	name = fmt.Sprintf("%s.headers_dropped", namespaceRoot)
	if HeadersDroppedCounter, err = meter.Int64Counter(
		name,
		api.WithUnit("1"),
		api.WithDescription("number of headers skipped because their client state could not be built"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	name = fmt.Sprintf("%s.chase_retries", namespaceRoot)
	if ChaseRetriesCounter, err = meter.Int64Counter(
		name,
		api.WithUnit("1"),
		api.WithDescription("number of failed page submissions while chasing lost headers"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	name = fmt.Sprintf("%s.relays", namespaceRoot)
	if RelaysCounter, err = meter.Int64Counter(
		name,
		api.WithUnit("1"),
		api.WithDescription("number of processed event batches by outcome"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	name = fmt.Sprintf("%s.destination_tip", namespaceRoot)
	if DestinationTipGauge, err = NewInt64SyncGauge(
		meter,
		name,
		api.WithUnit("1"),
		api.WithDescription("latest source height known to be recorded by the destination light client"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	return nil
}

func NewPrometheusExporter(addr string) (*prometheus.Exporter, error) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger := log.GetLogger().WithModule("telemetry.metrics")
			logger.Fatal("Prometheus exporter server failed", err)
		}
	}()

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create the Prometheus Exporter: %v", err)
	}

	return exporter, nil
}
