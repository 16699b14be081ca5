package metrics

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope used for all merge instruments.
const MeterName = "github.com/FACorreiaa/go-twmerge"

// MergeMetrics holds the metric instruments of one merger.
type MergeMetrics struct {
	MergesTotal           metric.Int64Counter
	MergeDuration         metric.Float64Histogram
	CacheHitsTotal        metric.Int64Counter
	CacheMissesTotal      metric.Int64Counter
	CacheRotationsTotal   metric.Int64Counter
	CacheEvictedTotal     metric.Int64Counter
	ConflictsDroppedTotal metric.Int64Counter

	attrs metric.MeasurementOption
}

// New creates the instruments on meter. The cache name is attached to every measurement.
func New(meter metric.Meter, cacheName string) (*MergeMetrics, error) {
	var err error
	m := &MergeMetrics{
		attrs: metric.WithAttributes(attribute.String("cache", cacheName)),
	}

	m.MergesTotal, err = meter.Int64Counter(
		"twmerge_merges_total",
		metric.WithDescription("Total number of merge calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create twmerge_merges_total")
	}

	m.MergeDuration, err = meter.Float64Histogram(
		"twmerge_merge_duration_seconds",
		metric.WithDescription("Duration of merges that missed the cache in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create twmerge_merge_duration_seconds")
	}

	m.CacheHitsTotal, err = meter.Int64Counter(
		"twmerge_cache_hits_total",
		metric.WithDescription("Total number of merge cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create twmerge_cache_hits_total")
	}

	m.CacheMissesTotal, err = meter.Int64Counter(
		"twmerge_cache_misses_total",
		metric.WithDescription("Total number of merge cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create twmerge_cache_misses_total")
	}

	m.CacheRotationsTotal, err = meter.Int64Counter(
		"twmerge_cache_generation_flips_total",
		metric.WithDescription("Total number of cache generation flips"),
		metric.WithUnit("{flip}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create twmerge_cache_generation_flips_total")
	}

	m.CacheEvictedTotal, err = meter.Int64Counter(
		"twmerge_cache_evicted_total",
		metric.WithDescription("Total number of cache entries dropped by generation flips"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create twmerge_cache_evicted_total")
	}

	m.ConflictsDroppedTotal, err = meter.Int64Counter(
		"twmerge_classes_dropped_total",
		metric.WithDescription("Total number of classes removed as overridden"),
		metric.WithUnit("{class}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create twmerge_classes_dropped_total")
	}

	return m, nil
}

// Default creates instruments on the global MeterProvider, which is a no-op until one is set.
func Default(cacheName string) *MergeMetrics {
	m, err := New(otel.GetMeterProvider().Meter(MeterName), cacheName)
	if err != nil {
		otel.Handle(err)
		return nil
	}
	return m
}

// RecordMerge counts one merge call.
func (m *MergeMetrics) RecordMerge(ctx context.Context) {
	if m == nil {
		return
	}
	m.MergesTotal.Add(ctx, 1, m.attrs)
}

// RecordCache counts a cache lookup.
func (m *MergeMetrics) RecordCache(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHitsTotal.Add(ctx, 1, m.attrs)
		return
	}
	m.CacheMissesTotal.Add(ctx, 1, m.attrs)
}

// RecordRotation counts a generation flip and the entries it dropped.
func (m *MergeMetrics) RecordRotation(ctx context.Context, evicted int) {
	if m == nil {
		return
	}
	m.CacheRotationsTotal.Add(ctx, 1, m.attrs)
	m.CacheEvictedTotal.Add(ctx, int64(evicted), m.attrs)
}

// RecordPipeline records a full tokenize, classify and resolve run.
func (m *MergeMetrics) RecordPipeline(ctx context.Context, seconds float64, dropped int) {
	if m == nil {
		return
	}
	m.MergeDuration.Record(ctx, seconds, m.attrs)
	if dropped > 0 {
		m.ConflictsDroppedTotal.Add(ctx, int64(dropped), m.attrs)
	}
}
