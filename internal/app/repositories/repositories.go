package repositories

import (
	"github.com/emre/grievancehub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	StudentRepository   *StudentRepository
	GrievanceRepository *GrievanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(database.Pool),
		StudentRepository:   NewStudentRepository(database.Pool),
		GrievanceRepository: NewGrievanceRepository(database),
	}
}
