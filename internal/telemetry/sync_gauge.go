package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type int64Observation struct {
	value int64
	attrs attribute.Set
}

// Int64SyncGauge is an observable gauge whose value is set synchronously and
// reported on collection. One value is kept per distinct attribute set.
type Int64SyncGauge struct {
	gauge        api.Int64ObservableGauge
	mu           sync.RWMutex
	observations map[attribute.Distinct]int64Observation
}

func NewInt64SyncGauge(meter api.Meter, name string, options ...api.Int64ObservableGaugeOption) (*Int64SyncGauge, error) {
	g := &Int64SyncGauge{
		observations: make(map[attribute.Distinct]int64Observation),
	}
	callback := func(ctx context.Context, observer api.Int64Observer) error {
		g.mu.RLock()
		defer g.mu.RUnlock()
		for _, o := range g.observations {
			observer.Observe(o.value, api.WithAttributeSet(o.attrs))
		}
		return nil
	}
	options = append(options, api.WithInt64Callback(callback))
	gauge, err := meter.Int64ObservableGauge(name, options...)
	if err != nil {
		return nil, err
	}
	g.gauge = gauge
	return g, nil
}

func (g *Int64SyncGauge) Set(value int64, attrs ...attribute.KeyValue) {
	set := attribute.NewSet(attrs...)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observations[set.Equivalent()] = int64Observation{value, set}
}

// Value returns the last value set for the attribute set.
func (g *Int64SyncGauge) Value(attrs ...attribute.KeyValue) (int64, bool) {
	set := attribute.NewSet(attrs...)
	g.mu.RLock()
	defer g.mu.RUnlock()
	o, ok := g.observations[set.Equivalent()]
	return o.value, ok
}
