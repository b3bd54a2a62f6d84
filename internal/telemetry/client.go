package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/randorium/randorium-go/internal/prompt"
)

const tracerName = "github.com/randorium/randorium-go/internal/telemetry"

// TracingClient wraps a prompt.Client and records one span per completion.
type TracingClient struct {
	next   prompt.Client
	name   string
	tracer trace.Tracer
}

var _ prompt.Client = (*TracingClient)(nil)

// NewTracingClient creates a tracing decorator around next.
func NewTracingClient(next prompt.Client) *TracingClient {
	name := "unknown"
	if n, ok := next.(interface{ Name() string }); ok {
		name = n.Name()
	}
	return &TracingClient{
		next:   next,
		name:   name,
		tracer: otel.Tracer(tracerName),
	}
}

func (c *TracingClient) Complete(ctx context.Context, p prompt.Prompt) (string, error) {
	ctx, span := c.tracer.Start(ctx, "prompt.Client.Complete",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.client", c.name),
			attribute.Int("llm.request.chars", len(p.System)+len(p.User)),
		),
	)
	defer span.End()

	out, err := c.next.Complete(ctx, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("llm.response.chars", len(out)))
	return out, nil
}

// Name reports the wrapped client's name.
func (c *TracingClient) Name() string {
	return c.name
}
