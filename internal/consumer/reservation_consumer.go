package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/dto"
	"github.com/Eursukkul/buggy-fleet/internal/models"
	"github.com/Eursukkul/buggy-fleet/internal/service"
	"github.com/Eursukkul/buggy-fleet/pkg/log"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Syncer interface {
	Sync(ctx context.Context, row allocation.Row) (*models.Reservation, error)
}

// ReservationConsumer upserts reservation rows pushed by the upstream booking
// system. A message body is one sheet row as a JSON object carrying external_ref.
type ReservationConsumer struct {
	svc    Syncer
	logger log.Logger
}

func NewReservationConsumer(svc Syncer, logger log.Logger) *ReservationConsumer {
	return &ReservationConsumer{svc: svc, logger: logger.WithName("reservation-consumer")}
}

// Run handles deliveries until ctx is done or the channel closes.
func (rc *ReservationConsumer) Run(ctx context.Context, msgs <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				rc.logger.Info("delivery channel closed, stopping consumer")
				return nil
			}
			rc.handleMessage(ctx, msg)
		}
	}
}

func (rc *ReservationConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	var req dto.ReservationRequest
	if err := json.Unmarshal(msg.Body, &req); err != nil {
		rc.logger.Error(err, "failed to unmarshal reservation", "routing_key", msg.RoutingKey)
		msg.Nack(false, false)
		return
	}

	res, err := rc.svc.Sync(ctx, req.ToRow())
	if err != nil {
		if errors.Is(err, service.ErrMissingExternalRef) {
			rc.logger.Warn("dropping reservation without external_ref", "routing_key", msg.RoutingKey)
			msg.Nack(false, false)
			return
		}
		rc.logger.Error(err, "failed to upsert reservation", "routing_key", msg.RoutingKey)
		msg.Nack(false, true) // requeue
		return
	}

	rc.logger.Info("synced reservation", "external_ref", *res.ExternalRef, "start_time", res.StartTime)
	msg.Ack(false)
}
