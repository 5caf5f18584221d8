// Package mocks provides an otel.Otel for tests. Spans go through the real Scope on a no-op tracer.
package mocks

import (
	"context"
	"dockhub/infras/otel"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type noopOtel struct {
	provider trace.TracerProvider
}

func (o *noopOtel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	ctx, span := o.provider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, otel.NewScope(span)
}

func (o *noopOtel) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel returns a tracer that records nothing.
func NewOtel() otel.Otel {
	return &noopOtel{provider: noop.NewTracerProvider()}
}
