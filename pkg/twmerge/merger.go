package twmerge

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/go-twmerge/internal/observability/metrics"
	"github.com/FACorreiaa/go-twmerge/internal/pkg/cache"
)

// Merger resolves conflicting utility classes for one configuration.
// It is safe for concurrent use.
type Merger struct {
	rules   *ruleSet
	cache   *cache.GenerationalCache[string]
	flight  singleflight.Group
	logger  *zap.Logger
	metrics *metrics.MergeMetrics
	name    string
}

type options struct {
	logger *zap.Logger
	meter  metric.Meter
	name   string
}

// Option configures a Merger.
type Option func(*options)

// WithLogger sets the logger. Mergers log nothing by default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMeter records merges and cache activity on meter instead of the global MeterProvider.
func WithMeter(meter metric.Meter) Option {
	return func(o *options) { o.meter = meter }
}

// WithName labels the merger's cache in logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// New validates cfg and builds a Merger for it.
func New(cfg Config, opts ...Option) (*Merger, error) {
	o := options{name: "twmerge"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	rules, err := compile(cfg, o.logger)
	if err != nil {
		return nil, err
	}

	var mm *metrics.MergeMetrics
	if o.meter != nil {
		if mm, err = metrics.New(o.meter, o.name); err != nil {
			return nil, err
		}
	} else {
		mm = metrics.Default(o.name)
	}

	m := &Merger{
		rules:   rules,
		logger:  o.logger,
		metrics: mm,
		name:    o.name,
	}
	m.cache = cache.NewGenerationalCache[string](cfg.CacheSize, o.name,
		cache.WithLogger[string](o.logger),
		cache.WithRotateHook[string](func(evicted int) {
			m.metrics.RecordRotation(context.Background(), evicted)
		}),
	)

	o.logger.Debug("Merger created",
		zap.String("cache", o.name),
		zap.Int("class_groups", len(cfg.ClassGroups)),
		zap.Int("cache_size", cfg.CacheSize),
		zap.String("separator", cfg.Separator),
		zap.String("prefix", cfg.Prefix),
	)
	return m, nil
}

// Merge joins classLists with spaces and removes every class overridden by a later one.
// Surviving classes keep their original order.
func (m *Merger) Merge(classLists ...string) string {
	input := strings.Join(classLists, " ")
	ctx := context.Background()
	m.metrics.RecordMerge(ctx)

	if !m.cache.Enabled() {
		return m.run(ctx, input)
	}

	if v, ok := m.cache.Get(input); ok {
		m.metrics.RecordCache(ctx, true)
		return v
	}
	m.metrics.RecordCache(ctx, false)

	v, _, _ := m.flight.Do(input, func() (any, error) {
		out := m.run(ctx, input)
		m.cache.Set(input, out)
		return out, nil
	})
	return v.(string)
}

// run is the uncached pipeline: split, tokenize, classify, resolve.
func (m *Merger) run(ctx context.Context, input string) string {
	start := time.Now()

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	entries := make([]classifiedEntry, len(fields))
	for i, f := range fields {
		tok := Tokenize(f, m.rules.separator, m.rules.prefix)
		entries[i] = m.rules.classifyToken(tok)
	}
	out, dropped := m.rules.resolve(entries)

	m.metrics.RecordPipeline(ctx, time.Since(start).Seconds(), dropped)
	return out
}

// CacheMetrics reports hit, miss and rotation counts of the merger's cache.
func (m *Merger) CacheMetrics() cache.CacheMetrics {
	return m.cache.GetMetrics()
}

// ClassGroup returns the class group a single class belongs to, ignoring modifiers.
// The second result is false for classes that are not recognised utilities.
func (m *Merger) ClassGroup(class string) (ClassGroupID, bool) {
	e := m.rules.classifyToken(Tokenize(class, m.rules.separator, m.rules.prefix))
	return e.groupID, e.groupID != ""
}

var (
	defaultMerger *Merger
	defaultOnce   sync.Once
)

// Default returns a shared Merger for DefaultConfig.
func Default() *Merger {
	defaultOnce.Do(func() {
		m, err := New(DefaultConfig(), WithName("default"))
		if err != nil {
			// DefaultConfig is static; failing to build it is a programming error.
			panic(err)
		}
		defaultMerger = m
	})
	return defaultMerger
}

// Merge merges class lists with the default configuration.
func Merge(classLists ...string) string {
	return Default().Merge(classLists...)
}
