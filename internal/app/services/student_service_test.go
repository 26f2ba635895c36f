package services

import (
	"context"
	"testing"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/pkg/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStudentReader struct {
	byCode map[string]*models.Student
}

func (f *fakeStudentReader) GetByCode(_ context.Context, code string) (*models.Student, error) {
	if student, ok := f.byCode[code]; ok {
		return student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func TestFindByCodeReturnsMatch(t *testing.T) {
	alice := &models.Student{
		ID:          uuid.New(),
		StudentCode: "STU-2025-041",
		Name:        "Alice Yilmaz",
		Class:       "8",
		Section:     "B",
	}
	svc := NewStudentService(&fakeStudentReader{
		byCode: map[string]*models.Student{"STU-2025-041": alice},
	})

	student, err := svc.FindByCode(context.Background(), "STU-2025-041")

	require.NoError(t, err)
	assert.Equal(t, alice, student)
}

func TestFindByCodeNotFound(t *testing.T) {
	svc := NewStudentService(&fakeStudentReader{byCode: map[string]*models.Student{}})

	_, err := svc.FindByCode(context.Background(), "STU-0000-000")

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestFindByCodeRejectsMalformedCode(t *testing.T) {
	svc := NewStudentService(&fakeStudentReader{byCode: map[string]*models.Student{}})

	for _, code := range []string{"", "a b", "code;drop table", "x"} {
		_, err := svc.FindByCode(context.Background(), code)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "code %q", code)
	}
}
