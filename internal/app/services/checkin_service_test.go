package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliperb/gympoint/internal/app/models"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
)

type checkinFixture struct {
	service  *CheckinService
	students *fakeStudentRepo
	checkins *fakeCheckinRepo
	clock    time.Time
}

func newCheckinFixture() *checkinFixture {
	f := &checkinFixture{
		students: newFakeStudentRepo(),
		clock:    time.Date(2023, time.May, 15, 8, 0, 0, 0, time.UTC),
	}
	now := func() time.Time { return f.clock }
	f.checkins = newFakeCheckinRepo(now)
	f.service = NewCheckinService(f.checkins, f.students)
	f.service.now = now
	return f
}

func (f *checkinFixture) seedStudent() *models.Student {
	return f.students.add(&models.Student{Name: "John Doe", Email: "john@example.com"})
}

func TestCheckinCreateUnknownStudent(t *testing.T) {
	f := newCheckinFixture()

	_, err := f.service.Create(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestCheckinAllowsFivePerWindow(t *testing.T) {
	f := newCheckinFixture()
	student := f.seedStudent()

	for i := 0; i < 5; i++ {
		f.clock = f.clock.Add(time.Hour)
		checkin, err := f.service.Create(context.Background(), student.ID)
		require.NoError(t, err)
		assert.Equal(t, student.ID, checkin.StudentID)
	}
}

func TestCheckinRejectsSixthInWindow(t *testing.T) {
	f := newCheckinFixture()
	student := f.seedStudent()

	for i := 0; i < 5; i++ {
		f.clock = f.clock.Add(time.Hour)
		_, err := f.service.Create(context.Background(), student.ID)
		require.NoError(t, err)
	}

	f.clock = f.clock.Add(time.Hour)
	_, err := f.service.Create(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrCheckinLimitReached)
}

func TestCheckinWindowRollsForward(t *testing.T) {
	f := newCheckinFixture()
	student := f.seedStudent()

	for i := 0; i < 5; i++ {
		f.clock = f.clock.Add(time.Hour)
		_, err := f.service.Create(context.Background(), student.ID)
		require.NoError(t, err)
	}

	// A week later the early check-ins have left the trailing window
	f.clock = f.clock.Add(7*24*time.Hour + time.Minute)
	_, err := f.service.Create(context.Background(), student.ID)
	assert.NoError(t, err)
}

func TestCheckinLimitIsPerStudent(t *testing.T) {
	f := newCheckinFixture()
	first := f.seedStudent()
	second := f.students.add(&models.Student{Name: "Jane Doe", Email: "jane@example.com"})

	for i := 0; i < 5; i++ {
		f.clock = f.clock.Add(time.Hour)
		_, err := f.service.Create(context.Background(), first.ID)
		require.NoError(t, err)
	}

	_, err := f.service.Create(context.Background(), second.ID)
	assert.NoError(t, err)
}

func TestCheckinGetAllByStudent(t *testing.T) {
	f := newCheckinFixture()
	student := f.seedStudent()

	for i := 0; i < 3; i++ {
		f.clock = f.clock.Add(24 * time.Hour)
		_, err := f.service.Create(context.Background(), student.ID)
		require.NoError(t, err)
	}

	checkins, err := f.service.GetAllByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, checkins, 3)
	assert.NotZero(t, checkins[0].ID)
	assert.NotZero(t, checkins[0].CreatedAt)
}
