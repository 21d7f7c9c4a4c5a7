// Package jobs defines the mail job payloads and the dispatcher that puts
// them on the queue. Dispatch is fire-and-forget: the triggering write has
// already committed, so callers log enqueue failures and move on.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/feliperb/gympoint/internal/pkg/queue"
)

// Job kinds
const (
	KindEnrollmentMail = "enrollment_mail"
	KindAnswerMail     = "answer_mail"
)

// Envelope is the wire format of a queued job
type Envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// EnrollmentMailPayload carries everything the welcome email needs, joined at
// enqueue time so the worker never touches the database
type EnrollmentMailPayload struct {
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	PlanTitle    string    `json:"plan_title"`
	Price        float64   `json:"price"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// AnswerMailPayload carries everything the answer notification email needs
type AnswerMailPayload struct {
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
}

// Dispatcher enqueues mail jobs
type Dispatcher struct {
	publisher queue.Publisher
}

// NewDispatcher creates a dispatcher over the given publisher
func NewDispatcher(publisher queue.Publisher) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
	}
}

// enqueue marshals the envelope and publishes it
func (d *Dispatcher) enqueue(ctx context.Context, kind string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", kind, err)
	}

	body, err := json.Marshal(Envelope{Kind: kind, Payload: raw})
	if err != nil {
		return fmt.Errorf("failed to marshal %s envelope: %w", kind, err)
	}

	if err := d.publisher.Publish(ctx, body); err != nil {
		return fmt.Errorf("failed to enqueue %s job: %w", kind, err)
	}

	return nil
}

// EnqueueEnrollmentMail queues the enrollment welcome email
func (d *Dispatcher) EnqueueEnrollmentMail(ctx context.Context, payload EnrollmentMailPayload) error {
	return d.enqueue(ctx, KindEnrollmentMail, payload)
}

// EnqueueAnswerMail queues the help order answer email
func (d *Dispatcher) EnqueueAnswerMail(ctx context.Context, payload AnswerMailPayload) error {
	return d.enqueue(ctx, KindAnswerMail, payload)
}
