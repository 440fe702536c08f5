package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"slotkeeper/shared/timezone"
)

// sweepLifecycle completes finished bookings and flags rentals that were not returned.
// Both halves run even when one fails.
func (w *Worker) sweepLifecycle(ctx context.Context) error {
	completed, bookingErr := w.deps.Booking.CompleteDue(ctx)
	overdue, rentalErr := w.deps.Rental.MarkOverdue(ctx)

	if completed > 0 || overdue > 0 {
		log.Info().Int("completed", completed).Int("overdue", overdue).Msg("lifecycle sweep")
	}

	return errors.Join(bookingErr, rentalErr)
}

func (w *Worker) publishOutbox(ctx context.Context) error {
	published, err := w.deps.Outbox.PublishPending(ctx)
	if published > 0 {
		log.Debug().Int("published", published).Msg("relayed outbox events")
	}

	return err // nolint:wrapcheck
}

func (w *Worker) purgeIdempotencyKeys(ctx context.Context) error {
	ttl := time.Duration(w.cfg.Reservation.IdempotencyTTLHours) * time.Hour

	purged, err := w.deps.Idempotency.Purge(ctx, timezone.Now().Add(-ttl))
	if err != nil {
		return err // nolint:wrapcheck
	}

	if purged > 0 {
		log.Info().Int64("purged", purged).Msg("expired idempotency keys")
	}

	return nil
}
