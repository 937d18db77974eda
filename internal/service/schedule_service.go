package service

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/repository"
	"github.com/postdeck/postdeck/internal/transfer"
)

type ScheduleService interface {
	List(ctx context.Context) ([]*models.Schedule, error)
	ListByPlatform(ctx context.Context, platform string) ([]*models.Schedule, error)
	ScheduleInfo(ctx context.Context, id string) (*models.Schedule, error)
	Create(ctx context.Context, sc *transfer.ScheduleCreation) (*models.Schedule, error)
	Update(ctx context.Context, id string, su *transfer.ScheduleUpdate) (*models.Schedule, error)
	Remove(ctx context.Context, id string) error
}

type scheduleService struct {
	sr repository.ScheduleRepository
	pr repository.PostRepository
}

func NewScheduleService(sr repository.ScheduleRepository, pr repository.PostRepository) ScheduleService {
	return &scheduleService{sr: sr, pr: pr}
}

func (s *scheduleService) List(ctx context.Context) ([]*models.Schedule, error) {
	schedules, err := s.sr.List(ctx)
	if err != nil {
		return nil, WrapError(err, "error listing schedules")
	}
	if schedules == nil {
		schedules = []*models.Schedule{}
	}
	return schedules, nil
}

func (s *scheduleService) ListByPlatform(ctx context.Context, platform string) ([]*models.Schedule, error) {
	schedules, err := s.sr.ListByPlatform(ctx, models.NormalizePlatform(platform))
	if err != nil {
		return nil, WrapError(err, "error listing schedules")
	}
	if schedules == nil {
		schedules = []*models.Schedule{}
	}
	return schedules, nil
}

func (s *scheduleService) ScheduleInfo(ctx context.Context, id string) (*models.Schedule, error) {
	schedule, err := s.sr.GetByID(ctx, id)
	if err != nil {
		return nil, WrapError(err, "error getting schedule")
	}
	if schedule == nil {
		return nil, ErrNotFound("Schedule not found")
	}
	return schedule, nil
}

func (s *scheduleService) Create(ctx context.Context, sc *transfer.ScheduleCreation) (*models.Schedule, error) {
	if sc.PostID == "" || sc.Platform == "" || sc.ScheduledTime == "" {
		return nil, ErrInvalid("post_id, platform, and scheduled_time are required")
	}
	if !models.IsValidPlatform(sc.Platform) {
		return nil, ErrInvalid("Platform must be facebook, twitter, or instagram")
	}

	scheduledTime, err := ParseScheduledTime(sc.ScheduledTime)
	if err != nil {
		return nil, ErrInvalid(err.Error())
	}

	post, err := s.pr.GetByID(ctx, sc.PostID)
	if err != nil {
		return nil, WrapError(err, "error getting post")
	}
	if post == nil {
		return nil, ErrNotFound("Post not found")
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	schedule := models.Schedule{
		ID:            id,
		PostID:        sc.PostID,
		Platform:      models.NormalizePlatform(sc.Platform),
		ScheduledTime: scheduledTime,
		Status:        models.ScheduleStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.sr.Create(ctx, &schedule); err != nil {
		return nil, WrapError(err, "error creating schedule")
	}

	return s.ScheduleInfo(ctx, id)
}

func (s *scheduleService) Update(ctx context.Context, id string, su *transfer.ScheduleUpdate) (*models.Schedule, error) {
	if su.ScheduledTime == nil && su.Status == nil {
		return nil, ErrInvalid("No valid fields to update")
	}
	if su.Status != nil && !models.IsValidScheduleStatus(*su.Status) {
		return nil, ErrInvalid("Status must be pending, published, or failed")
	}

	schedule, err := s.sr.GetByID(ctx, id)
	if err != nil {
		return nil, WrapError(err, "error getting schedule")
	}
	if schedule == nil {
		return nil, ErrNotFound("Schedule not found")
	}

	scheduledTime := schedule.ScheduledTime
	if su.ScheduledTime != nil {
		scheduledTime, err = ParseScheduledTime(*su.ScheduledTime)
		if err != nil {
			return nil, ErrInvalid(err.Error())
		}
	}

	status := schedule.Status
	publishedAt := schedule.PublishedAt
	if su.Status != nil {
		status = *su.Status
		// Moving to published stamps the publication time. Moving away
		// leaves any earlier stamp in place.
		if status == models.ScheduleStatusPublished {
			now := time.Now().UTC()
			publishedAt = &now
		}
	}

	if err := s.sr.Update(ctx, id, scheduledTime, status, publishedAt); err != nil {
		return nil, WrapError(err, "error updating schedule")
	}

	return s.ScheduleInfo(ctx, id)
}

func (s *scheduleService) Remove(ctx context.Context, id string) error {
	schedule, err := s.sr.GetByID(ctx, id)
	if err != nil {
		return WrapError(err, "error getting schedule")
	}
	if schedule == nil {
		return ErrNotFound("Schedule not found")
	}

	if err := s.sr.Remove(ctx, id); err != nil {
		return WrapError(err, "error removing schedule")
	}
	return nil
}
