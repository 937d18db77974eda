package service

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/repository"
	"github.com/postdeck/postdeck/internal/transfer"
)

type AnalyticsService interface {
	List(ctx context.Context) ([]*models.AnalyticsRecord, error)
	ListBySchedule(ctx context.Context, scheduleID string) ([]*models.AnalyticsRecord, error)
	ListByPlatform(ctx context.Context, platform string) ([]*models.AnalyticsRecord, error)
	Create(ctx context.Context, ac *transfer.AnalyticsCreation) (*models.Analytics, error)
	Update(ctx context.Context, id string, au *transfer.AnalyticsUpdate) (*models.Analytics, error)
	DashboardSummary(ctx context.Context) (*transfer.DashboardSummary, error)
}

type analyticsService struct {
	ar repository.AnalyticsRepository
	sr repository.ScheduleRepository
}

func NewAnalyticsService(ar repository.AnalyticsRepository, sr repository.ScheduleRepository) AnalyticsService {
	return &analyticsService{ar: ar, sr: sr}
}

func (s *analyticsService) List(ctx context.Context) ([]*models.AnalyticsRecord, error) {
	records, err := s.ar.List(ctx)
	if err != nil {
		return nil, WrapError(err, "error listing analytics")
	}
	if records == nil {
		records = []*models.AnalyticsRecord{}
	}
	return records, nil
}

func (s *analyticsService) ListBySchedule(ctx context.Context, scheduleID string) ([]*models.AnalyticsRecord, error) {
	records, err := s.ar.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, WrapError(err, "error listing analytics")
	}
	if records == nil {
		records = []*models.AnalyticsRecord{}
	}
	return records, nil
}

func (s *analyticsService) ListByPlatform(ctx context.Context, platform string) ([]*models.AnalyticsRecord, error) {
	records, err := s.ar.ListByPlatform(ctx, models.NormalizePlatform(platform))
	if err != nil {
		return nil, WrapError(err, "error listing analytics")
	}
	if records == nil {
		records = []*models.AnalyticsRecord{}
	}
	return records, nil
}

func counterValue(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func (s *analyticsService) Create(ctx context.Context, ac *transfer.AnalyticsCreation) (*models.Analytics, error) {
	if ac.ScheduleID == "" || ac.Platform == "" {
		return nil, ErrInvalid("schedule_id and platform are required")
	}

	schedule, err := s.sr.GetByID(ctx, ac.ScheduleID)
	if err != nil {
		return nil, WrapError(err, "error getting schedule")
	}
	if schedule == nil {
		return nil, ErrNotFound("Schedule not found")
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	// The schedule's own platform wins over whatever the caller submitted;
	// the two can disagree and the schedule is authoritative.
	a := models.Analytics{
		ID:         id,
		ScheduleID: ac.ScheduleID,
		Platform:   schedule.Platform,
		Likes:      counterValue(ac.Likes),
		Shares:     counterValue(ac.Shares),
		Comments:   counterValue(ac.Comments),
		Views:      counterValue(ac.Views),
		Clicks:     counterValue(ac.Clicks),
		RecordedAt: time.Now().UTC(),
	}
	a.EngagementRate = models.EngagementRate(a.Likes, a.Shares, a.Comments, a.Views)

	if err := s.ar.Create(ctx, &a); err != nil {
		return nil, WrapError(err, "error creating analytics record")
	}
	return &a, nil
}

func (s *analyticsService) Update(ctx context.Context, id string, au *transfer.AnalyticsUpdate) (*models.Analytics, error) {
	a, err := s.ar.GetByID(ctx, id)
	if err != nil {
		return nil, WrapError(err, "error getting analytics record")
	}
	if a == nil {
		return nil, ErrNotFound("Analytics record not found")
	}

	if au.Likes != nil {
		a.Likes = *au.Likes
	}
	if au.Shares != nil {
		a.Shares = *au.Shares
	}
	if au.Comments != nil {
		a.Comments = *au.Comments
	}
	if au.Views != nil {
		a.Views = *au.Views
	}
	if au.Clicks != nil {
		a.Clicks = *au.Clicks
	}
	a.EngagementRate = models.EngagementRate(a.Likes, a.Shares, a.Comments, a.Views)

	if err := s.ar.UpdateCounters(ctx, a); err != nil {
		return nil, WrapError(err, "error updating analytics record")
	}
	return a, nil
}

func (s *analyticsService) DashboardSummary(ctx context.Context) (*transfer.DashboardSummary, error) {
	totalPosts, err := s.ar.CountPosts(ctx)
	if err != nil {
		return nil, WrapError(err, "error counting posts")
	}

	totalSchedules, err := s.ar.CountSchedules(ctx)
	if err != nil {
		return nil, WrapError(err, "error counting schedules")
	}

	byStatus, err := s.ar.SchedulesByStatus(ctx)
	if err != nil {
		return nil, WrapError(err, "error grouping schedules by status")
	}

	byPlatform, err := s.ar.SchedulesByPlatform(ctx)
	if err != nil {
		return nil, WrapError(err, "error grouping schedules by platform")
	}

	totals, err := s.ar.EngagementTotals(ctx)
	if err != nil {
		return nil, WrapError(err, "error summing engagement")
	}

	engagementByPlatform, err := s.ar.EngagementByPlatform(ctx)
	if err != nil {
		return nil, WrapError(err, "error summing engagement by platform")
	}

	return &transfer.DashboardSummary{
		TotalPosts:           totalPosts,
		TotalSchedules:       totalSchedules,
		SchedulesByStatus:    byStatus,
		SchedulesByPlatform:  byPlatform,
		TotalEngagement:      *totals,
		EngagementByPlatform: engagementByPlatform,
	}, nil
}
