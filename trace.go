package decorator

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "decorator"

// Traced0 returns a wrapper that opens a span around each invocation. A
// failure Result records its error on the span and marks the span's status
// as Error; the Result itself passes through unchanged.
func Traced0[R any](opts ...TraceOption) Wrapper[SafeFunc0[R]] {
	cfg := newTraceConfig(opts)
	return func(fn SafeFunc0[R]) SafeFunc0[R] {
		return func(ctx context.Context) Result[R] {
			ctx, span := startSpan(ctx, cfg)
			defer span.End()
			res := fn(ctx)
			finishSpan(span, res.Err())
			return res
		}
	}
}

// Traced1 is the one-argument form of Traced0.
func Traced1[A, R any](opts ...TraceOption) Wrapper[SafeFunc1[A, R]] {
	cfg := newTraceConfig(opts)
	return func(fn SafeFunc1[A, R]) SafeFunc1[A, R] {
		return func(ctx context.Context, a A) Result[R] {
			ctx, span := startSpan(ctx, cfg)
			defer span.End()
			res := fn(ctx, a)
			finishSpan(span, res.Err())
			return res
		}
	}
}

// Traced2 is the two-argument form of Traced0.
func Traced2[A, B, R any](opts ...TraceOption) Wrapper[SafeFunc2[A, B, R]] {
	cfg := newTraceConfig(opts)
	return func(fn SafeFunc2[A, B, R]) SafeFunc2[A, B, R] {
		return func(ctx context.Context, a A, b B) Result[R] {
			ctx, span := startSpan(ctx, cfg)
			defer span.End()
			res := fn(ctx, a, b)
			finishSpan(span, res.Err())
			return res
		}
	}
}

// Traced3 is the three-argument form of Traced0.
func Traced3[A, B, C, R any](opts ...TraceOption) Wrapper[SafeFunc3[A, B, C, R]] {
	cfg := newTraceConfig(opts)
	return func(fn SafeFunc3[A, B, C, R]) SafeFunc3[A, B, C, R] {
		return func(ctx context.Context, a A, b B, c C) Result[R] {
			ctx, span := startSpan(ctx, cfg)
			defer span.End()
			res := fn(ctx, a, b, c)
			finishSpan(span, res.Err())
			return res
		}
	}
}

func startSpan(ctx context.Context, cfg traceConfig) (context.Context, trace.Span) {
	tracer := cfg.tp.Tracer(instrumentationName)
	return tracer.Start(ctx, cfg.spanName, trace.WithAttributes(cfg.attrs...))
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
