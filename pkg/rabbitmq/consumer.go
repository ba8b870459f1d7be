package rabbitmq

import (
	"fmt"

	"github.com/Eursukkul/buggy-fleet/pkg/log"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ReservationExchange = "reservations"
	ReservationQueue    = "fleet-service.reservations"
	ReservationBinding  = "reservation.*"
)

type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewConsumer(url string) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ReservationExchange, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	q, err := ch.QueueDeclare(ReservationQueue, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	if err := ch.QueueBind(q.Name, ReservationBinding, ReservationExchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue bind: %w", err)
	}

	// one unacked message at a time keeps upserts for the same booking in order
	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq qos: %w", err)
	}

	return &Consumer{conn: conn, channel: ch}, nil
}

func (c *Consumer) Consume() (<-chan amqp.Delivery, error) {
	msgs, err := c.channel.Consume(
		ReservationQueue,
		"",    // consumer tag
		false, // manual ack after the upsert
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq consume: %w", err)
	}

	log.Info("consuming reservations", "queue", ReservationQueue, "binding", ReservationBinding)
	return msgs, nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
