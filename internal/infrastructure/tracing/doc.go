/*
Package tracing provides lightweight request tracing.

A trace follows one HTTP request into the tool executions it triggers. Each
unit of work is a Span; spans are buffered and emitted as structured zap log
lines by a background collector.

# Usage

	tracer := tracing.New("umath", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "umath.divide")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Propagation

X-Trace-ID and X-Span-ID headers carry the trace context in and out of the
HTTP API.
*/
package tracing
