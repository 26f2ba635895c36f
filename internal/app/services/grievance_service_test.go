package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/pkg/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGrievanceStore is an in-memory GrievanceStore. rejectActor simulates
// the database policy: inserts whose created_by differs from it are refused.
type fakeGrievanceStore struct {
	mu          sync.Mutex
	rows        []models.Grievance
	rejectActor *uuid.UUID
	lastStart   time.Time
	lastEnd     time.Time

	// createGate, when set, makes Create block until the channel closes
	createGate    chan struct{}
	createEntered chan struct{}
}

func (f *fakeGrievanceStore) Create(_ context.Context, grievance *models.Grievance, actorID uuid.UUID) error {
	if f.createEntered != nil {
		f.createEntered <- struct{}{}
	}
	if f.createGate != nil {
		<-f.createGate
	}

	if f.rejectActor != nil && grievance.CreatedBy != *f.rejectActor {
		return apperrors.ErrPolicyRejected
	}

	grievance.ID = uuid.New()
	grievance.CreatedAt = time.Now()

	f.mu.Lock()
	f.rows = append(f.rows, *grievance)
	f.mu.Unlock()
	return nil
}

func (f *fakeGrievanceStore) ListRecent(_ context.Context, limit int) ([]models.Grievance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.rows) {
		limit = len(f.rows)
	}
	out := make([]models.Grievance, limit)
	copy(out, f.rows[len(f.rows)-limit:])
	return out, nil
}

func (f *fakeGrievanceStore) ListInRange(_ context.Context, start, end time.Time) ([]models.Grievance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastStart, f.lastEnd = start, end

	var out []models.Grievance
	for _, row := range f.rows {
		if !row.Date.Before(start) && !row.Date.After(end) {
			out = append(out, row)
		}
	}
	return out, nil
}

func newTestService(store GrievanceStore) *GrievanceService {
	return NewGrievanceService(store, 10, time.Monday, 3)
}

func TestRecordPersistsGrievance(t *testing.T) {
	store := &fakeGrievanceStore{}
	svc := newTestService(store)
	actor := uuid.New()

	grievance, err := svc.Record(context.Background(), actor, RecordInput{
		StudentID: uuid.New(),
		Type:      models.GrievanceTypeUniform,
	})

	require.NoError(t, err)
	assert.Equal(t, actor, grievance.CreatedBy)
	assert.NotEqual(t, uuid.Nil, grievance.ID)
	assert.Len(t, store.rows, 1)
}

func TestRecordRejectsUnknownType(t *testing.T) {
	store := &fakeGrievanceStore{}
	svc := newTestService(store)

	_, err := svc.Record(context.Background(), uuid.New(), RecordInput{
		StudentID: uuid.New(),
		Type:      models.GrievanceType("Chewing Gum"),
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidGrievanceType)
	assert.Empty(t, store.rows, "nothing may persist on validation failure")
}

func TestRecordCreatorMismatchRejectedByPolicy(t *testing.T) {
	allowed := uuid.New()
	store := &fakeGrievanceStore{rejectActor: &allowed}
	svc := newTestService(store)

	// The acting user differs from the one the policy accepts
	_, err := svc.Record(context.Background(), uuid.New(), RecordInput{
		StudentID: uuid.New(),
		Type:      models.GrievanceTypeShoes,
	})

	assert.ErrorIs(t, err, apperrors.ErrPolicyRejected)
	assert.Empty(t, store.rows, "a policy rejection must persist nothing")
}

func TestRecordRejectsFutureDate(t *testing.T) {
	store := &fakeGrievanceStore{}
	svc := newTestService(store)

	_, err := svc.Record(context.Background(), uuid.New(), RecordInput{
		StudentID: uuid.New(),
		Type:      models.GrievanceTypeOther,
		Date:      time.Now().AddDate(0, 0, 2),
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidGrievanceDate)
}

func TestRecordAcceptsTodayAheadOfUTC(t *testing.T) {
	store := &fakeGrievanceStore{}
	svc := newTestService(store)
	// Mid-morning in a zone three hours ahead of UTC: local midnight has
	// passed, UTC midnight of the same calendar day is still "later" as an
	// instant. Only the calendar day may matter.
	istanbul := time.FixedZone("UTC+3", 3*60*60)
	svc.now = func() time.Time { return time.Date(2026, 8, 25, 10, 0, 0, 0, istanbul) }

	today, err := time.Parse("2006-01-02", "2026-08-25")
	require.NoError(t, err)

	grievance, err := svc.Record(context.Background(), uuid.New(), RecordInput{
		StudentID: uuid.New(),
		Type:      models.GrievanceTypeLateArrival,
		Date:      today,
	})

	require.NoError(t, err, "a grievance dated today must be accepted regardless of server zone")
	assert.Equal(t, today.Year(), grievance.Date.Year())
	assert.Equal(t, today.YearDay(), grievance.Date.YearDay())

	// Tomorrow's calendar day is still refused
	tomorrow, err := time.Parse("2006-01-02", "2026-08-26")
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), uuid.New(), RecordInput{
		StudentID: uuid.New(),
		Type:      models.GrievanceTypeLateArrival,
		Date:      tomorrow,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGrievanceDate)
}

func TestRecordSecondSubmitWhileInFlightIsRefused(t *testing.T) {
	store := &fakeGrievanceStore{
		createGate:    make(chan struct{}),
		createEntered: make(chan struct{}, 1),
	}
	svc := newTestService(store)
	actor := uuid.New()

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Record(context.Background(), actor, RecordInput{
			StudentID: uuid.New(),
			Type:      models.GrievanceTypeUniform,
		})
		firstDone <- err
	}()

	// Wait until the first submit is inside the store call
	<-store.createEntered

	_, err := svc.Record(context.Background(), actor, RecordInput{
		StudentID: uuid.New(),
		Type:      models.GrievanceTypeUniform,
	})
	assert.ErrorIs(t, err, apperrors.ErrSubmissionInFlight)

	close(store.createGate)
	require.NoError(t, <-firstDone)
	assert.Len(t, store.rows, 1, "the double-trigger must produce one row")

	// The guard clears once the first submit finishes
	_, err = svc.Record(context.Background(), actor, RecordInput{
		StudentID: uuid.New(),
		Type:      models.GrievanceTypeShoes,
	})
	assert.NoError(t, err)
}

func TestRecentClampsLimit(t *testing.T) {
	store := &fakeGrievanceStore{}
	for i := 0; i < 80; i++ {
		store.rows = append(store.rows, models.Grievance{ID: uuid.New()})
	}
	svc := newTestService(store)

	records, err := svc.Recent(context.Background(), 500)
	require.NoError(t, err)
	assert.Len(t, records, maxRecentLimit)

	records, err = svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, records, 10, "non-positive limit falls back to the configured default")
}

func TestInRangeRejectsInvertedRange(t *testing.T) {
	svc := newTestService(&fakeGrievanceStore{})

	start := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)

	_, err := svc.InRange(context.Background(), start, end)
	assert.ErrorIs(t, err, apperrors.ErrInvalidGrievanceRange)
}

func TestWeeklyStatsQueriesCurrentWeekWindow(t *testing.T) {
	store := &fakeGrievanceStore{}
	svc := newTestService(store)
	// Wednesday 2025-04-16
	svc.now = func() time.Time { return time.Date(2025, 4, 16, 10, 0, 0, 0, time.UTC) }

	monday := time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)
	inWeek := models.Grievance{
		ID:      uuid.New(),
		Type:    models.GrievanceTypeUniform,
		Date:    monday.AddDate(0, 0, 1),
		Student: &models.Student{Name: "Alice"},
	}
	lastWeek := models.Grievance{
		ID:      uuid.New(),
		Type:    models.GrievanceTypeShoes,
		Date:    monday.AddDate(0, 0, -3),
		Student: &models.Student{Name: "Alice"},
	}
	store.rows = []models.Grievance{inWeek, lastWeek}

	result, err := svc.WeeklyStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, monday, store.lastStart)
	assert.Equal(t, monday.AddDate(0, 0, 6), store.lastEnd)
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].Count, "last week's record must not count")
}
