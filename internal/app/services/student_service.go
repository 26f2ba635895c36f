package services

import (
	"context"
	"fmt"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/pkg/apperrors"
	"github.com/emre/grievancehub/internal/pkg/validation"
)

// StudentService handles student lookups for the scan flow
type StudentService struct {
	students StudentReader
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentReader) *StudentService {
	return &StudentService{
		students: students,
	}
}

// FindByCode resolves a scanned code to the matching student. A code that
// does not match the expected format short-circuits without a query; zero or
// ambiguous database matches surface as ErrStudentNotFound.
func (s *StudentService) FindByCode(ctx context.Context, code string) (*models.Student, error) {
	ok := validation.NewStringValidation(code).
		WithPattern(validation.CompiledPatterns.StudentCode).
		Validate()
	if !ok {
		return nil, fmt.Errorf("%w: malformed student code", apperrors.ErrValidationFailed)
	}

	student, err := s.students.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return student, nil
}
