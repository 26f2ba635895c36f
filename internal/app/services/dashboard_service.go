package services

import (
	"context"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/app/stats"
	"github.com/emre/grievancehub/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Dashboard bundles the two sections the board view reloads after a submit.
// The fetches are independent: one section may carry data while the other
// carries its own error.
type Dashboard struct {
	Recent    []models.Grievance
	RecentErr error
	Weekly    []stats.WeeklyStat
	WeeklyErr error
}

// DashboardService assembles the recent list and the weekly summary
type DashboardService struct {
	grievanceService *GrievanceService
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(grievanceService *GrievanceService) *DashboardService {
	return &DashboardService{
		grievanceService: grievanceService,
	}
}

// Load fetches both dashboard sections concurrently. Section failures are
// captured per section instead of failing the whole load, so the closures
// always return nil and the group is used purely for the join.
func (s *DashboardService) Load(ctx context.Context) Dashboard {
	var dashboard Dashboard

	var g errgroup.Group
	g.Go(func() error {
		dashboard.Recent, dashboard.RecentErr = s.grievanceService.Recent(ctx, 0)
		return nil
	})
	g.Go(func() error {
		dashboard.Weekly, dashboard.WeeklyErr = s.grievanceService.WeeklyStats(ctx)
		return nil
	})
	_ = g.Wait()

	if dashboard.RecentErr != nil {
		logger.Error().Err(dashboard.RecentErr).Msg("Dashboard recent-list fetch failed")
	}
	if dashboard.WeeklyErr != nil {
		logger.Error().Err(dashboard.WeeklyErr).Msg("Dashboard weekly-stats fetch failed")
	}

	return dashboard
}
