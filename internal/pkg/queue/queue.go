package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Queue wraps an AMQP connection with a single durable queue declared on it.
// The mail jobs flow through one queue; the broker is trusted to redeliver
// nacked messages.
type Queue struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	name    string
	logger  zerolog.Logger
}

// Connect dials the broker and declares the durable queue
func Connect(url, name string, logger zerolog.Logger) (*Queue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		name,  // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", name, err)
	}

	logger.Info().Str("queue", name).Msg("Connected to RabbitMQ")

	return &Queue{
		conn:    conn,
		channel: channel,
		name:    name,
		logger:  logger,
	}, nil
}

// Name returns the declared queue name
func (q *Queue) Name() string {
	return q.name
}

// Channel returns the underlying AMQP channel
func (q *Queue) Channel() *amqp.Channel {
	return q.channel
}

// Close closes the channel and connection
func (q *Queue) Close() error {
	if q.channel != nil {
		if err := q.channel.Close(); err != nil {
			q.logger.Error().Err(err).Msg("Failed to close RabbitMQ channel")
		}
	}
	if q.conn != nil {
		if err := q.conn.Close(); err != nil {
			return err
		}
	}
	q.logger.Info().Msg("RabbitMQ connection closed")
	return nil
}
