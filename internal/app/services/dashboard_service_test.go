package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStore fails one side of the dual reload
type flakyStore struct {
	fakeGrievanceStore
	recentErr error
	rangeErr  error
}

func (f *flakyStore) ListRecent(ctx context.Context, limit int) ([]models.Grievance, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.fakeGrievanceStore.ListRecent(ctx, limit)
}

func (f *flakyStore) ListInRange(ctx context.Context, start, end time.Time) ([]models.Grievance, error) {
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	return f.fakeGrievanceStore.ListInRange(ctx, start, end)
}

func TestDashboardLoadsBothSections(t *testing.T) {
	store := &fakeGrievanceStore{}
	now := time.Now()
	store.rows = []models.Grievance{{
		ID:      uuid.New(),
		Type:    models.GrievanceTypeUniform,
		Date:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Student: &models.Student{Name: "Alice"},
	}}
	svc := NewDashboardService(newTestService(store))

	dashboard := svc.Load(context.Background())

	require.NoError(t, dashboard.RecentErr)
	require.NoError(t, dashboard.WeeklyErr)
	assert.Len(t, dashboard.Recent, 1)
	assert.Len(t, dashboard.Weekly, 1)
}

func TestDashboardPartialFailureIsIndependent(t *testing.T) {
	boom := errors.New("connection reset")
	store := &flakyStore{recentErr: boom}
	svc := NewDashboardService(newTestService(store))

	dashboard := svc.Load(context.Background())

	assert.ErrorIs(t, dashboard.RecentErr, boom)
	assert.NoError(t, dashboard.WeeklyErr, "weekly section must survive the recent-list failure")
}
