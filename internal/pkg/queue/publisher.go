package queue

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Publisher sends job payloads to the queue
type Publisher interface {
	Publish(ctx context.Context, body []byte) error
	Close() error
}

type amqpPublisher struct {
	channel *amqp.Channel
	queue   string
	logger  zerolog.Logger
}

// NewPublisher creates a publisher on the queue's channel
func NewPublisher(q *Queue) Publisher {
	return &amqpPublisher{
		channel: q.Channel(),
		queue:   q.Name(),
		logger:  q.logger,
	}
}

func (p *amqpPublisher) Publish(ctx context.Context, body []byte) error {
	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(
		publishCtx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}

func (p *amqpPublisher) Close() error {
	// Channel is closed by the owning Queue
	p.logger.Info().Msg("Queue publisher closed")
	return nil
}

// NopPublisher drops payloads and logs them. Wired when no broker URL is
// configured so write endpoints still work in development.
type NopPublisher struct {
	Logger zerolog.Logger
}

func (p NopPublisher) Publish(ctx context.Context, body []byte) error {
	p.Logger.Warn().RawJSON("job", body).Msg("Queue not configured - mail job dropped")
	return nil
}

func (p NopPublisher) Close() error {
	return nil
}
