package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

var _ datasources.Publisher = (*Client)(nil)

const (
	dialAttempts    = 5
	dialBackoffBase = 500 * time.Millisecond
)

// Client owns a single AMQP connection. It is constructed explicitly
// and injected; reconnection happens under the mutex, never through
// shared package-level state.
type Client struct {
	url         string
	eventsQueue string
	notifyQueue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial connects to the broker with bounded exponential backoff.
// eventsQueue receives the service's own weight events; notifyQueue
// receives events leaving the service for the notification pipeline.
func Dial(ctx context.Context, url, eventsQueue, notifyQueue string) (*Client, error) {
	c := &Client{
		url:         url,
		eventsQueue: eventsQueue,
		notifyQueue: notifyQueue,
	}

	backoff := dialBackoffBase
	var lastErr error
	for attempt := 0; attempt < dialAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		c.mu.Lock()
		lastErr = c.connectLocked()
		c.mu.Unlock()
		if lastErr == nil {
			return c, nil
		}

		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "broker connection attempt failed",
			"attempt", attempt+1, "error", lastErr)
	}

	return nil, fmt.Errorf("connecting to broker after %d attempts: %w", dialAttempts, lastErr)
}

// connectLocked (re)establishes the connection, channel and queues.
// Callers must hold c.mu.
func (c *Client) connectLocked() error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("dialling broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("opening broker channel: %w", err)
	}

	for _, queue := range []string{c.eventsQueue, c.notifyQueue} {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = conn.Close()
			return fmt.Errorf("declaring queue [%s]: %w", queue, err)
		}
	}

	c.conn = conn
	c.ch = ch
	return nil
}

// channel returns a live channel, reconnecting if the connection has
// dropped since the last use.
func (c *Client) channel() (*amqp.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		if err := c.connectLocked(); err != nil {
			return nil, err
		}
	}
	return c.ch, nil
}

// Publish sends an event envelope to the queue owning its type.
// Delivery is at-least-once; messages are persistent.
func (c *Client) Publish(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling event payload: %w", err)
	}

	envelope, err := json.Marshal(domain.Envelope{Type: eventType, Payload: body})
	if err != nil {
		return fmt.Errorf("marshalling event envelope: %w", err)
	}

	ch, err := c.channel()
	if err != nil {
		return fmt.Errorf("getting broker channel: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", c.queueFor(eventType), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         envelope,
	})
	if err != nil {
		return fmt.Errorf("publishing event [%s]: %w", eventType, err)
	}
	return nil
}

func (c *Client) queueFor(eventType string) string {
	if eventType == domain.EventLikeCreated {
		return c.notifyQueue
	}
	return c.eventsQueue
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("closing broker connection: %w", err)
	}
	c.conn = nil
	c.ch = nil
	return nil
}
