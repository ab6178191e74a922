package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/josephgoksu/taskdeck/store"
)

// Metrics holds the server's metric instruments.
type Metrics struct {
	Requests        metric.Int64Counter
	RequestDuration metric.Float64Histogram

	registration metric.Registration
}

// NewMetrics creates all instruments from meter. When stats is non-nil the
// index cache counters are observed from it on every collection.
func NewMetrics(meter metric.Meter, stats store.StatsProvider) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.Requests, err = meter.Int64Counter("taskdeck.http.requests",
		metric.WithDescription("HTTP requests served"),
	)
	if err != nil {
		return nil, err
	}

	m.RequestDuration, err = meter.Float64Histogram("taskdeck.http.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	if stats == nil {
		return m, nil
	}

	hits, err := meter.Int64ObservableCounter("taskdeck.cache.hits",
		metric.WithDescription("Index cache lookups answered from a valid entry"),
	)
	if err != nil {
		return nil, err
	}
	misses, err := meter.Int64ObservableCounter("taskdeck.cache.misses",
		metric.WithDescription("Index cache lookups that fell back to a scan"),
	)
	if err != nil {
		return nil, err
	}
	reconciliations, err := meter.Int64ObservableCounter("taskdeck.cache.reconciliations",
		metric.WithDescription("Index cache reconciliation passes"),
	)
	if err != nil {
		return nil, err
	}
	entries, err := meter.Int64ObservableGauge("taskdeck.cache.entries",
		metric.WithDescription("Entries currently held in the index cache"),
	)
	if err != nil {
		return nil, err
	}
	tasks, err := meter.Int64ObservableGauge("taskdeck.tasks",
		metric.WithDescription("Tasks currently stored"),
	)
	if err != nil {
		return nil, err
	}

	m.registration, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := stats.Stats()
		o.ObserveInt64(hits, s.Hits)
		o.ObserveInt64(misses, s.Misses)
		o.ObserveInt64(reconciliations, s.Reconciliations)
		o.ObserveInt64(entries, int64(s.CacheEntries))
		o.ObserveInt64(tasks, int64(s.Tasks))
		return nil
	}, hits, misses, reconciliations, entries, tasks)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordRequest records one served request.
func (m *Metrics) RecordRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	m.Requests.Add(ctx, 1, attrs)
	m.RequestDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// Close unregisters the cache callback.
func (m *Metrics) Close() error {
	if m.registration == nil {
		return nil
	}
	return m.registration.Unregister()
}
