package queue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const reservationQueueName = "reservation.events"

// Publisher pushes reservation events to RabbitMQ over a single
// connection, redialing lazily after a failure.  Messages are
// persistent so they survive broker restarts.  Safe for concurrent
// use.
type Publisher struct {
	url string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher returns a Publisher for the given AMQP URL.  No
// connection is made until the first publish.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// PublishReservationEvent sends one event to the reservation.events
// queue.  Errors are returned so callers can decide whether to log or
// retry; the broker being down never panics.
func (p *Publisher) PublishReservationEvent(ctx context.Context, ev ReservationEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.EventID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", reservationQueueName, false, false, pub); err != nil {
		// Channel is unusable after a publish error; drop it so the
		// next call redials.
		p.reset()
		return err
	}
	return nil
}

// Close shuts the connection down.  Subsequent publishes redial.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

// channel returns the open channel, dialing and declaring the queue
// when needed.  Caller holds p.mu.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(reservationQueueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("queue", reservationQueueName).Msg("amqp publisher connected")
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
