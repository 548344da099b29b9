package decorator

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultErrorPrefix = "error:"
	defaultBanner      = "*******"
	defaultTimePrefix  = "> Logged at"
	defaultSpanName    = "decorator.Call"

	defaultCacheSize = 1000
	defaultCacheTTL  = time.Minute
)

type safeConfig struct {
	panicFilter func(any) bool
}

// SafeOption is a function type for configuring the fail-safe wrappers.
type SafeOption func(*safeConfig)

// WithPanicFilter restricts which panics the fail-safe intercepts. A panic
// whose recovered value is rejected by filter is re-raised instead of being
// converted into a Failure.
func WithPanicFilter(filter func(recovered any) bool) SafeOption {
	return func(c *safeConfig) {
		c.panicFilter = filter
	}
}

func newSafeConfig(opts []SafeOption) safeConfig {
	var cfg safeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type outputConfig struct {
	errorPrefix string
	label       string
	banner      string
	format      func(any) string
}

// OutputOption is a function type for configuring the Output and Banner
// wrappers.
type OutputOption func(*outputConfig)

// WithErrorPrefix replaces the prefix put before a failure's message.
func WithErrorPrefix(prefix string) OutputOption {
	return func(c *outputConfig) {
		c.errorPrefix = prefix
	}
}

// WithLabel puts a fixed label before a success's rendered value.
func WithLabel(label string) OutputOption {
	return func(c *outputConfig) {
		c.label = label
	}
}

// WithFormatter replaces the textual conversion used for success values.
func WithFormatter(format func(any) string) OutputOption {
	return func(c *outputConfig) {
		c.format = format
	}
}

// WithBannerLine replaces the line the Banner wrappers emit.
func WithBannerLine(line string) OutputOption {
	return func(c *outputConfig) {
		c.banner = line
	}
}

func newOutputConfig(opts []OutputOption) outputConfig {
	cfg := outputConfig{
		errorPrefix: defaultErrorPrefix,
		banner:      defaultBanner,
		format:      formatValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type timeConfig struct {
	now           func() time.Time
	prefix        string
	layout        string
	captureBefore bool
	elapsed       bool
}

// TimeOption is a function type for configuring the LogTime wrappers.
type TimeOption func(*timeConfig)

// WithNow replaces the clock, which tests use to pin timestamps.
func WithNow(now func() time.Time) TimeOption {
	return func(c *timeConfig) {
		c.now = now
	}
}

// WithLogPrefix replaces the prefix put before the rendered timestamp.
func WithLogPrefix(prefix string) TimeOption {
	return func(c *timeConfig) {
		c.prefix = prefix
	}
}

// WithTimeLayout replaces the time layout used to render the timestamp.
func WithTimeLayout(layout string) TimeOption {
	return func(c *timeConfig) {
		c.layout = layout
	}
}

// WithCaptureBefore captures the timestamp when the call starts instead of
// when it returns.
func WithCaptureBefore() TimeOption {
	return func(c *timeConfig) {
		c.captureBefore = true
	}
}

// WithElapsed appends the call's duration to the timestamp line.
func WithElapsed() TimeOption {
	return func(c *timeConfig) {
		c.elapsed = true
	}
}

func newTimeConfig(opts []TimeOption) timeConfig {
	cfg := timeConfig{
		now:    time.Now,
		prefix: defaultTimePrefix,
		layout: time.ANSIC,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type memoConfig struct {
	size int
	ttl  time.Duration
}

// MemoOption is a function type for configuring the memoizers.
type MemoOption func(*memoConfig)

// WithCache sets the cache size and expiration for a memoizer.
func WithCache(size int, expire time.Duration) MemoOption {
	return func(c *memoConfig) {
		c.size = size
		c.ttl = expire
	}
}

func newMemoConfig(opts []MemoOption) memoConfig {
	cfg := memoConfig{
		size: defaultCacheSize,
		ttl:  defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type traceConfig struct {
	tp       trace.TracerProvider
	spanName string
	attrs    []attribute.KeyValue
}

// TraceOption is a function type for configuring the Traced wrappers.
type TraceOption func(*traceConfig)

// WithTracerProvider sets the tracer provider for the Traced wrappers.
func WithTracerProvider(tp trace.TracerProvider) TraceOption {
	return func(c *traceConfig) {
		c.tp = tp
	}
}

// WithSpanName replaces the name of the span opened per invocation.
func WithSpanName(name string) TraceOption {
	return func(c *traceConfig) {
		c.spanName = name
	}
}

// WithSpanAttributes attaches fixed attributes to every opened span.
func WithSpanAttributes(attrs ...attribute.KeyValue) TraceOption {
	return func(c *traceConfig) {
		c.attrs = append(c.attrs, attrs...)
	}
}

func newTraceConfig(opts []TraceOption) traceConfig {
	cfg := traceConfig{
		tp:       otel.GetTracerProvider(),
		spanName: defaultSpanName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
