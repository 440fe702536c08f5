// Package jobs runs the background work of the engine: lifecycle sweeps, outbox relay,
// idempotency key expiry and the calendar busy consumer.
package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"slotkeeper/config"
	"slotkeeper/infras/kafka"
	"slotkeeper/infras/otel"
	bookingService "slotkeeper/internal/domains/booking/service"
	calendarService "slotkeeper/internal/domains/calendar/service"
	outboxService "slotkeeper/internal/domains/outbox/service"
	rentalService "slotkeeper/internal/domains/rental/service"
	"slotkeeper/internal/reservation"
	"slotkeeper/shared/constant"
)

const purgeInterval = time.Hour

// Job is a periodic task. A failed run is logged and retried on the next tick.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Consumer struct {
	Group   string
	Topic   string
	Handler kafka.Handler
}

type Dependencies struct {
	Booking     bookingService.Booking
	Rental      rentalService.Rental
	Outbox      outboxService.Outbox
	Idempotency reservation.Idempotency
	Calendar    calendarService.Calendar
}

type Worker struct {
	deps      Dependencies
	cfg       *config.Config
	kafka     kafka.Client
	otel      otel.Otel
	jobs      []Job
	consumers []Consumer
}

func New(deps Dependencies, cfg *config.Config, kafka kafka.Client, otel otel.Otel) *Worker {
	w := &Worker{
		deps:  deps,
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}

	w.jobs = []Job{
		{Name: "lifecycle", Interval: seconds(cfg.Jobs.LifecycleIntervalSeconds), Run: w.sweepLifecycle},
		{Name: "outbox", Interval: seconds(cfg.Jobs.OutboxIntervalSeconds), Run: w.publishOutbox},
		{Name: "idempotency", Interval: purgeInterval, Run: w.purgeIdempotencyKeys},
	}

	if cfg.Kafka.Topic.CalendarBusy != "" {
		w.consumers = append(w.consumers, Consumer{
			Group:   cfg.Kafka.ConsumerGroup,
			Topic:   cfg.Kafka.Topic.CalendarBusy,
			Handler: w.handleCalendarBusy,
		})
	}

	return w
}

// Run blocks until ctx is done, then waits for in-flight runs to finish.
func (w *Worker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, job := range w.jobs {
		g.Go(func() error {
			w.loop(ctx, job)

			return nil
		})
	}

	for _, consumer := range w.consumers {
		g.Go(func() error {
			log.Info().Str("topic", consumer.Topic).Msg("starting consumer")
			w.kafka.Consume(ctx, consumer.Group, consumer.Topic, consumer.Handler)

			return nil
		})
	}

	return g.Wait() // nolint:wrapcheck
}

// Close releases the Kafka connections and flushes pending spans.
func (w *Worker) Close(ctx context.Context) error {
	return errors.Join(w.kafka.Close(), w.otel.Shutdown(ctx))
}

func (w *Worker) loop(ctx context.Context, job Job) {
	log.Info().Str("job", job.Name).Dur("interval", job.Interval).Msg("starting job")

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		w.runOnce(ctx, job)

		select {
		case <-ctx.Done():
			log.Info().Str("job", job.Name).Msg("job stopped")

			return
		case <-ticker.C:
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, job Job) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+"."+job.Name)
	defer scope.End()

	if err := job.Run(ctx); err != nil && ctx.Err() == nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("job", job.Name).Msg("job run failed")
	}
}

func seconds(n int) time.Duration {
	if n <= 0 {
		n = 1
	}

	return time.Duration(n) * time.Second
}
