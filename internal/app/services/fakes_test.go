package services

import (
	"context"
	"time"

	"github.com/feliperb/gympoint/internal/app/models"
)

// In-memory fakes for the repository interfaces. They implement just enough
// bookkeeping for the service behavior under test.

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[int64]*models.Student{}, nextID: 1}
}

func (r *fakeStudentRepo) add(student *models.Student) *models.Student {
	if student.ID == 0 {
		student.ID = r.nextID
		r.nextID++
	} else if student.ID >= r.nextID {
		r.nextID = student.ID + 1
	}
	r.students[student.ID] = student
	return student
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	r.add(student)
	return nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now()
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	return r.students[id], nil
}

func (r *fakeStudentRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, s := range r.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakePlanRepo struct {
	plans  map[int64]*models.Plan
	nextID int64
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[int64]*models.Plan{}, nextID: 1}
}

func (r *fakePlanRepo) add(plan *models.Plan) *models.Plan {
	if plan.ID == 0 {
		plan.ID = r.nextID
		r.nextID++
	} else if plan.ID >= r.nextID {
		r.nextID = plan.ID + 1
	}
	r.plans[plan.ID] = plan
	return plan
}

func (r *fakePlanRepo) Create(_ context.Context, plan *models.Plan) error {
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt
	r.add(plan)
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id int64) (*models.Plan, error) {
	return r.plans[id], nil
}

func (r *fakePlanRepo) GetAll(_ context.Context) ([]*models.Plan, error) {
	plans := make([]*models.Plan, 0, len(r.plans))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.plans[id]; ok {
			plans = append(plans, p)
		}
	}
	return plans, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *models.Plan) error {
	plan.UpdatedAt = time.Now()
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id int64) error {
	delete(r.plans, id)
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments map[int64]*models.Enrollment
	nextID      int64

	students *fakeStudentRepo
	plans    *fakePlanRepo
}

func newFakeEnrollmentRepo(students *fakeStudentRepo, plans *fakePlanRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrollments: map[int64]*models.Enrollment{},
		nextID:      1,
		students:    students,
		plans:       plans,
	}
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) error {
	enrollment.ID = r.nextID
	r.nextID++
	enrollment.CreatedAt = time.Now()
	enrollment.UpdatedAt = enrollment.CreatedAt
	r.enrollments[enrollment.ID] = enrollment
	return nil
}

func (r *fakeEnrollmentRepo) Update(_ context.Context, enrollment *models.Enrollment) error {
	enrollment.UpdatedAt = time.Now()
	r.enrollments[enrollment.ID] = enrollment
	return nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, id int64) error {
	delete(r.enrollments, id)
	return nil
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	return r.enrollments[id], nil
}

func (r *fakeEnrollmentRepo) GetWithRelations(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, ok := r.enrollments[id]
	if !ok {
		return nil, nil
	}
	joined := *enrollment
	joined.Student = r.students.students[enrollment.StudentID]
	joined.Plan = r.plans.plans[enrollment.PlanID]
	return &joined, nil
}

func (r *fakeEnrollmentRepo) GetAllWithRelations(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments := make([]*models.Enrollment, 0, len(r.enrollments))
	for id := int64(1); id < r.nextID; id++ {
		if _, ok := r.enrollments[id]; !ok {
			continue
		}
		joined, _ := r.GetWithRelations(ctx, id)
		enrollments = append(enrollments, joined)
	}
	return enrollments, nil
}

func (r *fakeEnrollmentRepo) ExistsForStudent(_ context.Context, studentID int64) (bool, error) {
	for _, e := range r.enrollments {
		if e.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

type fakeCheckinRepo struct {
	checkins []*models.Checkin
	nextID   int64
	now      func() time.Time
}

func newFakeCheckinRepo(now func() time.Time) *fakeCheckinRepo {
	return &fakeCheckinRepo{nextID: 1, now: now}
}

func (r *fakeCheckinRepo) Create(_ context.Context, studentID int64) (*models.Checkin, error) {
	checkin := &models.Checkin{
		ID:        r.nextID,
		StudentID: studentID,
		CreatedAt: r.now(),
	}
	r.nextID++
	r.checkins = append(r.checkins, checkin)
	return checkin, nil
}

func (r *fakeCheckinRepo) CountInWindow(_ context.Context, studentID int64, from, to time.Time) (int, error) {
	count := 0
	for _, c := range r.checkins {
		if c.StudentID != studentID {
			continue
		}
		if !c.CreatedAt.Before(from) && !c.CreatedAt.After(to) {
			count++
		}
	}
	return count, nil
}

func (r *fakeCheckinRepo) GetAllByStudent(_ context.Context, studentID int64) ([]*models.Checkin, error) {
	var result []*models.Checkin
	for _, c := range r.checkins {
		if c.StudentID == studentID {
			result = append(result, c)
		}
	}
	return result, nil
}

type fakeHelpOrderRepo struct {
	helpOrders map[int64]*models.HelpOrder
	nextID     int64

	students *fakeStudentRepo
}

func newFakeHelpOrderRepo(students *fakeStudentRepo) *fakeHelpOrderRepo {
	return &fakeHelpOrderRepo{helpOrders: map[int64]*models.HelpOrder{}, nextID: 1, students: students}
}

func (r *fakeHelpOrderRepo) Create(_ context.Context, helpOrder *models.HelpOrder) error {
	helpOrder.ID = r.nextID
	r.nextID++
	helpOrder.CreatedAt = time.Now()
	helpOrder.UpdatedAt = helpOrder.CreatedAt
	r.helpOrders[helpOrder.ID] = helpOrder
	return nil
}

func (r *fakeHelpOrderRepo) GetByID(_ context.Context, id int64) (*models.HelpOrder, error) {
	helpOrder, ok := r.helpOrders[id]
	if !ok {
		return nil, nil
	}
	joined := *helpOrder
	joined.Student = r.students.students[helpOrder.StudentID]
	return &joined, nil
}

func (r *fakeHelpOrderRepo) GetUnanswered(_ context.Context) ([]*models.HelpOrder, error) {
	var result []*models.HelpOrder
	for id := int64(1); id < r.nextID; id++ {
		if h, ok := r.helpOrders[id]; ok && h.Answer == nil {
			result = append(result, h)
		}
	}
	return result, nil
}

func (r *fakeHelpOrderRepo) GetByStudent(_ context.Context, studentID int64) ([]*models.HelpOrder, error) {
	var result []*models.HelpOrder
	for id := int64(1); id < r.nextID; id++ {
		if h, ok := r.helpOrders[id]; ok && h.StudentID == studentID {
			result = append(result, h)
		}
	}
	return result, nil
}

func (r *fakeHelpOrderRepo) Answer(_ context.Context, id int64, answer string, answerAt time.Time) error {
	helpOrder := r.helpOrders[id]
	helpOrder.Answer = &answer
	helpOrder.AnswerAt = &answerAt
	helpOrder.UpdatedAt = answerAt
	return nil
}

// capturePublisher records published job bodies for assertions
type capturePublisher struct {
	published [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, body []byte) error {
	p.published = append(p.published, body)
	return nil
}

func (p *capturePublisher) Close() error {
	return nil
}
