package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/app/stats"
	"github.com/emre/grievancehub/internal/pkg/apperrors"
	"github.com/emre/grievancehub/internal/pkg/helpers"
	"github.com/emre/grievancehub/internal/pkg/validation"
	"github.com/google/uuid"
)

// maxRecentLimit caps client-supplied limits on the recent list
const maxRecentLimit = 50

// GrievanceService handles recording and querying grievances
type GrievanceService struct {
	grievances      GrievanceStore
	recentLimit     int
	weekStart       time.Weekday
	repeatThreshold int
	now             func() time.Time

	// inFlight guards against a rapid double-submit by the same actor
	// producing two rows. One submission per actor at a time.
	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewGrievanceService creates a new grievance service instance
func NewGrievanceService(grievances GrievanceStore, recentLimit int, weekStart time.Weekday, repeatThreshold int) *GrievanceService {
	if recentLimit < 1 {
		recentLimit = 10
	}
	return &GrievanceService{
		grievances:      grievances,
		recentLimit:     recentLimit,
		weekStart:       weekStart,
		repeatThreshold: repeatThreshold,
		now:             time.Now,
		inFlight:        make(map[uuid.UUID]struct{}),
	}
}

// RecordInput carries a submission from the form
type RecordInput struct {
	StudentID   uuid.UUID
	Type        models.GrievanceType
	Description *string
	Date        time.Time // zero value means today
}

// Record validates and persists one grievance for the acting staff member.
// The grievance type is checked here because the database column is an
// unconstrained text field. On any failure nothing is persisted and the
// caller keeps its form state.
func (s *GrievanceService) Record(ctx context.Context, actorID uuid.UUID, input RecordInput) (*models.Grievance, error) {
	if input.StudentID == uuid.Nil {
		return nil, fmt.Errorf("%w: student is required", apperrors.ErrValidationFailed)
	}

	if !input.Type.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidGrievanceType, input.Type)
	}

	if input.Description != nil {
		ok := validation.NewStringValidation(*input.Description).
			WithRequired(false).
			WithMaxLength(validation.DescriptionMaxLength).
			Validate()
		if !ok {
			return nil, fmt.Errorf("%w: description too long", apperrors.ErrValidationFailed)
		}
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}
	date = truncateToDate(date)
	if afterDay(date, s.now()) {
		return nil, fmt.Errorf("%w: occurrence date is in the future", apperrors.ErrInvalidGrievanceDate)
	}

	if !s.beginSubmit(actorID) {
		return nil, apperrors.ErrSubmissionInFlight
	}
	defer s.endSubmit(actorID)

	grievance := &models.Grievance{
		StudentID:   input.StudentID,
		Type:        input.Type,
		Description: input.Description,
		Date:        date,
		CreatedBy:   actorID,
	}

	if err := s.grievances.Create(ctx, grievance, actorID); err != nil {
		return nil, err
	}

	return grievance, nil
}

// Recent returns the newest grievances with their student projections.
// A non-positive limit falls back to the configured default.
func (s *GrievanceService) Recent(ctx context.Context, limit int) ([]models.Grievance, error) {
	if limit < 1 {
		limit = s.recentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	return s.grievances.ListRecent(ctx, limit)
}

// InRange returns all grievances whose occurrence date falls within
// [start, end] inclusive.
func (s *GrievanceService) InRange(ctx context.Context, start, end time.Time) ([]models.Grievance, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end before start", apperrors.ErrInvalidGrievanceRange)
	}

	return s.grievances.ListInRange(ctx, start, end)
}

// WeeklyStats aggregates the current week's grievances per student. The week
// window is computed here and passed to the range query; the aggregation
// itself is the pure stats.Weekly reduction.
func (s *GrievanceService) WeeklyStats(ctx context.Context) ([]stats.WeeklyStat, error) {
	start, end := helpers.WeekWindow(s.now(), s.weekStart)

	records, err := s.grievances.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return stats.Weekly(records, s.repeatThreshold), nil
}

// WeekWindow exposes the current weekly window for response metadata.
func (s *GrievanceService) WeekWindow() (start, end time.Time) {
	return helpers.WeekWindow(s.now(), s.weekStart)
}

func (s *GrievanceService) beginSubmit(actorID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[actorID]; busy {
		return false
	}
	s.inFlight[actorID] = struct{}{}
	return true
}

func (s *GrievanceService) endSubmit(actorID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, actorID)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// afterDay reports whether t falls on a later calendar day than ref. Dates
// arrive parsed in UTC while the clock runs in the server's zone, so the
// comparison works on date components, never on instants.
func afterDay(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	if ty != ry {
		return ty > ry
	}
	if tm != rm {
		return tm > rm
	}
	return td > rd
}
