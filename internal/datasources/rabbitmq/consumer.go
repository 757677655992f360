package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hiostage/news-feed-service/internal/domain"
)

const (
	consumerPrefetch       = 10
	consumerReconnectDelay = 5 * time.Second
)

// Handler processes one decoded event payload. A returned error rejects
// the message but never stops the consumer loop.
type Handler func(ctx context.Context, payload json.RawMessage) error

// Consumer dispatches envelopes from one queue to per-type handlers.
// Messages are acknowledged only after successful processing, giving
// at-least-once semantics; there is no message-id deduplication, so a
// redelivered weight event applies its delta again.
type Consumer struct {
	Client   *Client
	Queue    string
	Handlers map[string]Handler
}

func (c *Consumer) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	for {
		if err := c.consumeOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.WarnContext(ctx, "consumer connection lost, reconnecting",
				"queue", c.Queue, "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(consumerReconnectDelay):
		}
	}
}

// consumeOnce drains deliveries until the channel closes or ctx ends.
func (c *Consumer) consumeOnce(ctx context.Context) error {
	ch, err := c.Client.channel()
	if err != nil {
		return fmt.Errorf("getting broker channel: %w", err)
	}

	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		return fmt.Errorf("setting prefetch: %w", err)
	}

	deliveries, err := ch.Consume(c.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("starting consume on [%s]: %w", c.Queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed for [%s]", c.Queue)
			}
			c.process(ctx, delivery)
		}
	}
}

func (c *Consumer) process(ctx context.Context, delivery amqp.Delivery) {
	logger := domain.LoggerFromContext(ctx)

	var envelope domain.Envelope
	if err := json.Unmarshal(delivery.Body, &envelope); err != nil {
		logger.WarnContext(ctx, "dropping malformed broker message", "error", err)
		_ = delivery.Nack(false, false)
		return
	}

	handler, known := c.Handlers[envelope.Type]
	if !known {
		logger.WarnContext(ctx, "dropping broker message of unknown type", "type", envelope.Type)
		_ = delivery.Nack(false, false)
		return
	}

	if err := handler(ctx, envelope.Payload); err != nil {
		// Rejected without requeue so one poison message cannot wedge
		// the queue.
		logger.ErrorContext(ctx, "event handler failed",
			"type", envelope.Type, "error", err)
		_ = delivery.Nack(false, false)
		return
	}

	if err := delivery.Ack(false); err != nil {
		logger.WarnContext(ctx, "failed to ack broker message",
			"type", envelope.Type, "error", err)
	}
}
