package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/db"
	"github.com/emre/grievancehub/internal/pkg/apperrors"
	"github.com/emre/grievancehub/internal/pkg/dberrors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GrievanceRepository handles database operations for grievances. It holds
// the PostgresDB wrapper rather than the bare pool because inserts run in a
// transaction that binds the acting user for the row policies.
type GrievanceRepository struct {
	db *db.PostgresDB
}

// NewGrievanceRepository creates a new grievance repository
func NewGrievanceRepository(database *db.PostgresDB) *GrievanceRepository {
	return &GrievanceRepository{
		db: database,
	}
}

const joinedGrievanceColumns = `
	g.id, g.student_id, g.type, g.description, g.date, g.created_at, g.created_by,
	s.id, s.student_id, s.name, s.class, s.section, s.created_at
`

// Create inserts a grievance with created_by bound to actorID. The insert
// runs inside a transaction that sets app.current_user_id so the grievances
// insert policy can compare created_by against the acting user. A policy
// rejection persists nothing and surfaces as ErrPolicyRejected.
func (r *GrievanceRepository) Create(ctx context.Context, grievance *models.Grievance, actorID uuid.UUID) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// set_config with is_local=true scopes the setting to this transaction
		_, err := tx.Exec(ctx, `SELECT set_config('app.current_user_id', $1, true)`, actorID.String())
		if err != nil {
			return fmt.Errorf("error binding acting user: %w", err)
		}

		query := `
			INSERT INTO grievances (student_id, type, description, date, created_by)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		return tx.QueryRow(ctx, query,
			grievance.StudentID,
			grievance.Type,
			grievance.Description,
			grievance.Date,
			grievance.CreatedBy,
		).Scan(&grievance.ID, &grievance.CreatedAt)
	})

	if err != nil {
		if dberrors.IsPolicyViolation(err) {
			return apperrors.ErrPolicyRejected
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating grievance: %w", err)
	}

	return nil
}

// ListRecent retrieves the newest grievances with their student projection,
// ordered by creation time descending, at most limit rows.
func (r *GrievanceRepository) ListRecent(ctx context.Context, limit int) ([]models.Grievance, error) {
	query := `
		SELECT ` + joinedGrievanceColumns + `
		FROM grievances g
		LEFT JOIN students s ON s.id = g.student_id
		ORDER BY g.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent grievances: %w", err)
	}
	defer rows.Close()

	return scanJoinedGrievances(rows)
}

// ListInRange retrieves all grievances whose occurrence date falls in
// [start, end], both ends inclusive, with their student projection.
func (r *GrievanceRepository) ListInRange(ctx context.Context, start, end time.Time) ([]models.Grievance, error) {
	query := `
		SELECT ` + joinedGrievanceColumns + `
		FROM grievances g
		LEFT JOIN students s ON s.id = g.student_id
		WHERE g.date BETWEEN $1 AND $2
	`

	rows, err := r.db.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("error listing grievances in range: %w", err)
	}
	defer rows.Close()

	return scanJoinedGrievances(rows)
}

// scanJoinedGrievances scans grievance rows with a left-joined student. The
// student columns are nullable; a missing join leaves Grievance.Student nil.
func scanJoinedGrievances(rows pgx.Rows) ([]models.Grievance, error) {
	var grievances []models.Grievance
	for rows.Next() {
		var g models.Grievance
		var (
			studentID        *uuid.UUID
			studentCode      *string
			studentName      *string
			studentClass     *string
			studentSection   *string
			studentCreatedAt *time.Time
		)

		if err := rows.Scan(
			&g.ID,
			&g.StudentID,
			&g.Type,
			&g.Description,
			&g.Date,
			&g.CreatedAt,
			&g.CreatedBy,
			&studentID,
			&studentCode,
			&studentName,
			&studentClass,
			&studentSection,
			&studentCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning grievance: %w", err)
		}

		if studentID != nil {
			g.Student = &models.Student{
				ID:          *studentID,
				StudentCode: *studentCode,
				Name:        *studentName,
				Class:       *studentClass,
				Section:     *studentSection,
				CreatedAt:   *studentCreatedAt,
			}
		}

		grievances = append(grievances, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grievances, nil
}
