package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/randorium/randorium-go"

// Counters counts tool usage.
type Counters struct {
	passwords metric.Int64Counter
	dice      metric.Int64Counter
	prompts   metric.Int64Counter
}

// NewCounters creates the counters on the global meter provider. Call it
// after Setup so the configured provider is used.
func NewCounters() *Counters {
	meter := otel.Meter(meterName)
	return &Counters{
		passwords: counter(meter, "randorium.passwords.generated", "Passwords generated"),
		dice:      counter(meter, "randorium.dice.rolled", "Dice rolled"),
		prompts:   counter(meter, "randorium.prompts.generated", "Writing prompts generated"),
	}
}

func counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		slog.Warn("creating counter failed", "counter", name, "error", err)
		return noop.Int64Counter{}
	}
	return c
}

// PasswordGenerated records one generated password of the given length.
func (c *Counters) PasswordGenerated(ctx context.Context, length int) {
	if c == nil {
		return
	}
	c.passwords.Add(ctx, 1, metric.WithAttributes(attribute.Int("password.length", length)))
}

// DiceRolled records count dice of the given type.
func (c *Counters) DiceRolled(ctx context.Context, sides, count int) {
	if c == nil {
		return
	}
	c.dice.Add(ctx, int64(count), metric.WithAttributes(attribute.Int("dice.sides", sides)))
}

// PromptGenerated records one generated prompt.
func (c *Counters) PromptGenerated(ctx context.Context, ok bool) {
	if c == nil {
		return
	}
	c.prompts.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", ok)))
}
