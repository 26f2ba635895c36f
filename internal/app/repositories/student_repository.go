package repositories

import (
	"context"
	"fmt"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentRepository handles database operations for students. Students are
// read-only in this system; provisioning happens out of band.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetByCode looks up the student whose external code equals code. Anything
// other than exactly one matching row signals not-found: the scanner flow
// treats zero and ambiguous matches the same way.
func (r *StudentRepository) GetByCode(ctx context.Context, code string) (*models.Student, error) {
	query := `
		SELECT id, student_id, name, class, section, created_at
		FROM students
		WHERE student_id = $1
	`

	rows, err := r.db.Query(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("error querying student by code: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.StudentCode,
			&student.Name,
			&student.Class,
			&student.Section,
			&student.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(students) != 1 {
		return nil, apperrors.ErrStudentNotFound
	}

	return students[0], nil
}

// GetAll retrieves the full roster, ordered by class, section and name.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, student_id, name, class, section, created_at
		FROM students
		ORDER BY class, section, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.StudentCode,
			&student.Name,
			&student.Class,
			&student.Section,
			&student.CreatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ExistsByCode checks if a student exists with the given external code.
// Used by the seeder to stay idempotent.
func (r *StudentRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`,
		code).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// Create inserts a roster entry. Only the seeder calls this; the API exposes
// no student creation endpoint.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, name, class, section)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentCode, student.Name, student.Class, student.Section,
	).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}
