package jobs

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"slotkeeper/infras/kafka"
	"slotkeeper/internal/domains/calendar/model/dto"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/failure"
)

// handleCalendarBusy applies one busy sync message. Messages that can never succeed are logged
// and skipped so they do not block the partition; anything else is returned for a retry.
func (w *Worker) handleCalendarBusy(ctx context.Context, msg kafkaGo.Message) error {
	busy, err := kafka.DecodeKafkaMessage[dto.BusySync](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("dropping malformed calendar busy message")

		return nil
	}

	res, err := w.deps.Calendar.ImportBusy(ctx, lifecycle.System, busy.BusinessID, busy.ConnectionID, busy.ImportBusyRequest)
	if err != nil {
		if code := failure.GetCode(err); code >= http.StatusBadRequest && code < http.StatusInternalServerError {
			log.Warn().Err(err).Str("connection_id", busy.ConnectionID.String()).Msg("dropping rejected calendar busy message")

			return nil
		}

		return err // nolint:wrapcheck
	}

	log.Debug().Str("connection_id", res.ConnectionID.String()).Int("imported", res.Imported).Msg("calendar busy sync applied")

	return nil
}
