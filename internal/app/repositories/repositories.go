package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	PlanRepository       *PlanRepository
	EnrollmentRepository *EnrollmentRepository
	CheckinRepository    *CheckinRepository
	HelpOrderRepository  *HelpOrderRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		PlanRepository:       NewPlanRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		CheckinRepository:    NewCheckinRepository(db),
		HelpOrderRepository:  NewHelpOrderRepository(db),
	}
}
