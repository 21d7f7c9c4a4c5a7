// Package worker runs the background consumer that turns queued mail jobs
// into outbound email.
package worker

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/feliperb/gympoint/internal/app/jobs"
	"github.com/feliperb/gympoint/internal/pkg/email"
	"github.com/feliperb/gympoint/internal/pkg/queue"
)

// MailWorker consumes mail jobs and sends them through the mailer.
// Delivery failures are nacked with requeue (at-least-once); messages that
// cannot be decoded are acked and dropped so they don't poison the queue.
type MailWorker struct {
	consumer queue.Consumer
	mailer   email.Mailer
	logger   zerolog.Logger
}

// NewMailWorker creates a new MailWorker
func NewMailWorker(consumer queue.Consumer, mailer email.Mailer, logger zerolog.Logger) *MailWorker {
	return &MailWorker{
		consumer: consumer,
		mailer:   mailer,
		logger:   logger,
	}
}

// Run consumes jobs until the context is cancelled or the channel closes
func (w *MailWorker) Run(ctx context.Context) error {
	messages, err := w.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	for msg := range messages {
		w.handle(msg)
	}

	return nil
}

// handle processes a single delivery
func (w *MailWorker) handle(msg queue.Message) {
	var envelope jobs.Envelope
	if err := json.Unmarshal(msg.Body, &envelope); err != nil {
		w.logger.Error().Err(err).Msg("Dropping undecodable mail job")
		_ = msg.Ack(false)
		return
	}

	var err error
	switch envelope.Kind {
	case jobs.KindEnrollmentMail:
		err = w.handleEnrollmentMail(envelope.Payload)
	case jobs.KindAnswerMail:
		err = w.handleAnswerMail(envelope.Payload)
	default:
		w.logger.Error().Str("kind", envelope.Kind).Msg("Dropping mail job of unknown kind")
		_ = msg.Ack(false)
		return
	}

	if err != nil {
		w.logger.Error().Err(err).Str("kind", envelope.Kind).Msg("Mail job failed, requeueing")
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
}

func (w *MailWorker) handleEnrollmentMail(raw json.RawMessage) error {
	var payload jobs.EnrollmentMailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Payload is broken, not the mailer: log and succeed so it gets acked
		w.logger.Error().Err(err).Msg("Dropping enrollment mail job with bad payload")
		return nil
	}

	w.logger.Info().
		Str("studentEmail", payload.StudentEmail).
		Str("plan", payload.PlanTitle).
		Msg("Sending enrollment welcome email")

	return w.mailer.SendEnrollmentWelcome(
		payload.StudentEmail,
		payload.StudentName,
		payload.PlanTitle,
		payload.Price,
		payload.StartDate,
		payload.EndDate,
	)
}

func (w *MailWorker) handleAnswerMail(raw json.RawMessage) error {
	var payload jobs.AnswerMailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		w.logger.Error().Err(err).Msg("Dropping answer mail job with bad payload")
		return nil
	}

	w.logger.Info().
		Str("studentEmail", payload.StudentEmail).
		Msg("Sending help order answer email")

	return w.mailer.SendHelpOrderAnswer(
		payload.StudentEmail,
		payload.StudentName,
		payload.Question,
		payload.Answer,
	)
}
