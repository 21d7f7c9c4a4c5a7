package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliperb/gympoint/internal/app/jobs"
	"github.com/feliperb/gympoint/internal/app/models"
	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	service     *EnrollmentService
	students    *fakeStudentRepo
	plans       *fakePlanRepo
	enrollments *fakeEnrollmentRepo
	publisher   *capturePublisher
}

func newEnrollmentFixture() *enrollmentFixture {
	students := newFakeStudentRepo()
	plans := newFakePlanRepo()
	enrollments := newFakeEnrollmentRepo(students, plans)
	publisher := &capturePublisher{}

	service := NewEnrollmentService(
		enrollments,
		students,
		plans,
		jobs.NewDispatcher(publisher),
		zerolog.Nop(),
	)

	return &enrollmentFixture{
		service:     service,
		students:    students,
		plans:       plans,
		enrollments: enrollments,
		publisher:   publisher,
	}
}

func (f *enrollmentFixture) seedStudent() *models.Student {
	return f.students.add(&models.Student{Name: "John Doe", Email: "john@example.com", Age: 25, Weight: 80, Height: 1.8})
}

func (f *enrollmentFixture) seedPlan(duration int, price float64) *models.Plan {
	return f.plans.add(&models.Plan{Title: "Gold", Duration: duration, Price: price})
}

func TestEnrollmentCreateDerivesPriceAndEndDate(t *testing.T) {
	f := newEnrollmentFixture()
	student := f.seedStudent()
	plan := f.seedPlan(3, 109)

	start := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	enrollment, err := f.service.Create(context.Background(), student.ID, &dto.EnrollmentStoreRequest{
		PlanID:    plan.ID,
		StartDate: start,
	})
	require.NoError(t, err)

	assert.Equal(t, 327.0, enrollment.Price)
	assert.Equal(t, start, enrollment.StartDate)
	// Jan 31 + 3 months lands on Apr 30, not May 1
	assert.Equal(t, time.Date(2023, time.April, 30, 0, 0, 0, 0, time.UTC), enrollment.EndDate)
}

func TestEnrollmentCreateUnknownStudent(t *testing.T) {
	f := newEnrollmentFixture()
	plan := f.seedPlan(1, 100)

	_, err := f.service.Create(context.Background(), 99, &dto.EnrollmentStoreRequest{
		PlanID:    plan.ID,
		StartDate: time.Now(),
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestEnrollmentCreateUnknownPlan(t *testing.T) {
	f := newEnrollmentFixture()
	student := f.seedStudent()

	_, err := f.service.Create(context.Background(), student.ID, &dto.EnrollmentStoreRequest{
		PlanID:    99,
		StartDate: time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, "Plan does not exists", err.Error())
}

func TestEnrollmentCreateBlocksSecondEnrollment(t *testing.T) {
	f := newEnrollmentFixture()
	student := f.seedStudent()
	plan := f.seedPlan(1, 100)

	// Enrollment well in the past still blocks; any row counts
	_, err := f.service.Create(context.Background(), student.ID, &dto.EnrollmentStoreRequest{
		PlanID:    plan.ID,
		StartDate: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = f.service.Create(context.Background(), student.ID, &dto.EnrollmentStoreRequest{
		PlanID:    plan.ID,
		StartDate: time.Now(),
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestEnrollmentCreateEnqueuesWelcomeMail(t *testing.T) {
	f := newEnrollmentFixture()
	student := f.seedStudent()
	plan := f.seedPlan(2, 50)

	_, err := f.service.Create(context.Background(), student.ID, &dto.EnrollmentStoreRequest{
		PlanID:    plan.ID,
		StartDate: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, f.publisher.published, 1)

	var envelope jobs.Envelope
	require.NoError(t, json.Unmarshal(f.publisher.published[0], &envelope))
	assert.Equal(t, jobs.KindEnrollmentMail, envelope.Kind)

	var payload jobs.EnrollmentMailPayload
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, "John Doe", payload.StudentName)
	assert.Equal(t, "john@example.com", payload.StudentEmail)
	assert.Equal(t, "Gold", payload.PlanTitle)
	assert.Equal(t, 100.0, payload.Price)
}

func TestEnrollmentUpdateRecomputesDerivedFields(t *testing.T) {
	f := newEnrollmentFixture()
	student := f.seedStudent()
	plan := f.seedPlan(1, 100)

	created, err := f.service.Create(context.Background(), student.ID, &dto.EnrollmentStoreRequest{
		PlanID:    plan.ID,
		StartDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	bigger := f.seedPlan(6, 89)
	newStart := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)

	updated, err := f.service.Update(context.Background(), created.ID, &dto.EnrollmentUpdateRequest{
		StudentID: student.ID,
		PlanID:    bigger.ID,
		StartDate: newStart,
	})
	require.NoError(t, err)

	assert.Equal(t, 534.0, updated.Price)
	assert.Equal(t, time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC), updated.EndDate)
}

func TestEnrollmentUpdateUnknownEnrollment(t *testing.T) {
	f := newEnrollmentFixture()
	student := f.seedStudent()
	plan := f.seedPlan(1, 100)

	_, err := f.service.Update(context.Background(), 99, &dto.EnrollmentUpdateRequest{
		StudentID: student.ID,
		PlanID:    plan.ID,
		StartDate: time.Now(),
	})
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestEnrollmentDelete(t *testing.T) {
	f := newEnrollmentFixture()
	student := f.seedStudent()
	plan := f.seedPlan(1, 100)

	created, err := f.service.Create(context.Background(), student.ID, &dto.EnrollmentStoreRequest{
		PlanID:    plan.ID,
		StartDate: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, f.service.Delete(context.Background(), created.ID), apperrors.ErrEnrollmentNotFound)
}

func TestEnrollmentGetByIDReturnsProjections(t *testing.T) {
	f := newEnrollmentFixture()
	student := f.seedStudent()
	plan := f.seedPlan(2, 75)

	created, err := f.service.Create(context.Background(), student.ID, &dto.EnrollmentStoreRequest{
		PlanID:    plan.ID,
		StartDate: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	response, err := f.service.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, student.Name, response.Student.Name)
	assert.Equal(t, student.Email, response.Student.Email)
	assert.Equal(t, plan.Title, response.Plan.Title)
	assert.Equal(t, plan.Duration, response.Plan.Duration)
	assert.Equal(t, 150.0, response.Price)
}
