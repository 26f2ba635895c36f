package services

import (
	"context"
	"time"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/google/uuid"
)

// Repository contracts consumed by the services. Declared here, on the
// consumer side, so tests can run against in-memory fakes.

// StudentReader reads the roster.
type StudentReader interface {
	GetByCode(ctx context.Context, code string) (*models.Student, error)
}

// GrievanceStore reads and appends grievance rows.
type GrievanceStore interface {
	Create(ctx context.Context, grievance *models.Grievance, actorID uuid.UUID) error
	ListRecent(ctx context.Context, limit int) ([]models.Grievance, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]models.Grievance, error)
}

// UserStore manages staff accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
