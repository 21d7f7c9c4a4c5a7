package queue

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Message is one delivery from the queue. Ack confirms processing; Nack with
// requeue puts the message back for redelivery.
type Message struct {
	Body      []byte
	Timestamp time.Time
	Ack       func(multiple bool) error
	Nack      func(multiple bool, requeue bool) error
}

// Consumer receives job payloads from the queue
type Consumer interface {
	Consume(ctx context.Context) (<-chan Message, error)
	Close() error
}

type amqpConsumer struct {
	channel     *amqp.Channel
	queue       string
	consumerTag string
	logger      zerolog.Logger
}

// NewConsumer creates a consumer on the queue's channel
func NewConsumer(q *Queue, consumerTag string) Consumer {
	return &amqpConsumer{
		channel:     q.Channel(),
		queue:       q.Name(),
		consumerTag: consumerTag,
		logger:      q.logger,
	}
}

func (c *amqpConsumer) Consume(ctx context.Context) (<-chan Message, error) {
	err := c.channel.Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		c.queue,       // queue
		c.consumerTag, // consumer
		false,         // auto-ack
		false,         // exclusive
		false,         // no-local
		false,         // no-wait
		nil,           // args
	)
	if err != nil {
		return nil, err
	}

	output := make(chan Message)

	go func() {
		defer close(output)

		for {
			select {
			case <-ctx.Done():
				c.logger.Info().Msg("Stopping queue consumer")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Warn().Msg("Queue message channel closed")
					return
				}

				out := Message{
					Body:      msg.Body,
					Timestamp: msg.Timestamp,
					Ack:       msg.Ack,
					Nack:      msg.Nack,
				}

				select {
				case output <- out:
				case <-ctx.Done():
					msg.Nack(false, true)
					return
				}
			}
		}
	}()

	c.logger.Info().
		Str("queue", c.queue).
		Str("consumer_tag", c.consumerTag).
		Msg("Queue consumer started")

	return output, nil
}

func (c *amqpConsumer) Close() error {
	if c.channel != nil {
		if err := c.channel.Cancel(c.consumerTag, false); err != nil {
			c.logger.Error().Err(err).Msg("Failed to cancel queue consumer")
		}
	}

	c.logger.Info().Msg("Queue consumer closed")
	return nil
}
