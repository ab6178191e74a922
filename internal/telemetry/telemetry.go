// Package telemetry provides OpenTelemetry metrics for the taskdeck server.
// When disabled, all instruments are no-ops.
package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/josephgoksu/taskdeck/types"
)

// MeterName is the instrumentation scope name for taskdeck metrics.
const MeterName = "taskdeck"

// Provider wraps a meter provider with cleanup.
type Provider struct {
	MeterProvider metric.MeterProvider
	Meter         metric.Meter
	shutdown      func(context.Context) error
}

// Init sets up metrics export for cfg. Enabled telemetry periodically writes
// JSON snapshots to w; disabled telemetry returns a no-op provider.
func Init(ctx context.Context, cfg types.TelemetryConfig, w io.Writer, version string) (*Provider, error) {
	if !cfg.Enabled {
		mp := noop.NewMeterProvider()
		return &Provider{
			MeterProvider: mp,
			Meter:         mp.Meter(MeterName),
			shutdown:      func(context.Context) error { return nil },
		}, nil
	}

	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.Interval))
	return newSDKProvider(reader, version), nil
}

// NewProviderWithReader builds an SDK provider around reader, typically a
// sdkmetric.ManualReader in tests.
func NewProviderWithReader(reader sdkmetric.Reader) *Provider {
	return newSDKProvider(reader, "")
}

func newSDKProvider(reader sdkmetric.Reader, version string) *Provider {
	res := resource.NewSchemaless(
		attribute.String("service.name", MeterName),
		attribute.String("service.version", version),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	return &Provider{
		MeterProvider: mp,
		Meter:         mp.Meter(MeterName),
		shutdown:      mp.Shutdown,
	}
}

// Shutdown flushes and shuts down the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.shutdown == nil {
		return nil
	}
	return p.shutdown(ctx)
}
