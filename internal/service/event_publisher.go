// Package publisher delivers domain events to RabbitMQ.  Errors are
// logged and returned so callers can ignore failures without
// interrupting the main request flow.
package publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/luxurystay/hotel-reservation/internal/queue"
)

const bookingQueueName = "booking.events"

// Publisher publishes booking lifecycle events.  A zero URL disables
// publishing entirely (PublishBookingEvent becomes a no-op), which is
// how deployments without a broker run.
type Publisher struct {
	URL string
}

// New returns a Publisher for the given AMQP URL.
func New(url string) *Publisher { return &Publisher{URL: url} }

// PublishBookingEvent publishes an event to the booking.events queue.
// The queue is declared durable and messages are marked persistent so
// they survive broker restarts.  Never panics; any error is logged and
// returned for the caller to ignore.
func (p *Publisher) PublishBookingEvent(ctx context.Context, event q.BookingEvent) error {
	if p == nil || p.URL == "" {
		return nil
	}
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare so publisher and consumer can start in any order.
	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", bookingQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
