package exporter

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-twmerge/internal/observability/metrics"
)

// Provider is an OpenTelemetry MeterProvider whose measurements are exposed through a
// private Prometheus registry instead of an HTTP endpoint.
type Provider struct {
	registry *prometheus.Registry
	mp       *sdkmetric.MeterProvider
	logger   *zap.Logger
}

// New sets up the meter provider for serviceName.
func New(serviceName, version string, logger *zap.Logger) (*Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version),
	)

	registry := prometheus.NewRegistry()
	promExporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, errors.Wrap(err, "create prometheus exporter")
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(promExporter),
	)
	logger.Debug("Set up OpenTelemetry Meter Provider with Prometheus Exporter",
		zap.String("service", serviceName))

	return &Provider{registry: registry, mp: mp, logger: logger}, nil
}

// Meter returns the meter merge instruments are created on.
func (p *Provider) Meter() metric.Meter {
	return p.mp.Meter(metrics.MeterName)
}

// WriteText writes every collected metric family in the Prometheus text format.
func (p *Provider) WriteText(w io.Writer) error {
	families, err := p.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "write metric family %s", mf.GetName())
		}
	}
	return nil
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.mp.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "OTel Meter Provider shutdown")
	}
	p.logger.Debug("OTel Meter Provider stopped.")
	return nil
}
