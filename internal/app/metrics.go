package app

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// bookingMetrics records booking flow events on the global meter provider.
// Without a collector the provider is a no-op.
type bookingMetrics struct {
	seatToggles       metric.Int64Counter
	arrangementChecks metric.Int64Counter
	discountAttempts  metric.Int64Counter
	checkouts         metric.Int64Counter
}

func newBookingMetrics() (*bookingMetrics, error) {
	meter := otel.Meter(serviceName)

	seatToggles, err := meter.Int64Counter("booking.seat_toggles",
		metric.WithDescription("Seat toggle requests by outcome"))
	if err != nil {
		return nil, err
	}

	arrangementChecks, err := meter.Int64Counter("booking.arrangement_checks",
		metric.WithDescription("Seat arrangement checks by result"))
	if err != nil {
		return nil, err
	}

	discountAttempts, err := meter.Int64Counter("booking.discount_attempts",
		metric.WithDescription("Discount code attempts by result"))
	if err != nil {
		return nil, err
	}

	checkouts, err := meter.Int64Counter("booking.checkouts",
		metric.WithDescription("Completed checkouts"))
	if err != nil {
		return nil, err
	}

	return &bookingMetrics{
		seatToggles:       seatToggles,
		arrangementChecks: arrangementChecks,
		discountAttempts:  discountAttempts,
		checkouts:         checkouts,
	}, nil
}

func (m *bookingMetrics) recordToggle(ctx context.Context, outcome string) {
	m.seatToggles.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *bookingMetrics) recordArrangementCheck(ctx context.Context, valid bool) {
	m.arrangementChecks.Add(ctx, 1, metric.WithAttributes(attribute.Bool("valid", valid)))
}

func (m *bookingMetrics) recordDiscount(ctx context.Context, result string) {
	m.discountAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (m *bookingMetrics) recordCheckout(ctx context.Context, tickets int, discounted bool) {
	m.checkouts.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("tickets", tickets),
		attribute.Bool("discounted", discounted),
	))
}
