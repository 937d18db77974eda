package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/transfer"
)

func asServiceError(err error, target *ServiceError) bool {
	return errors.As(err, target)
}

type fakePostRepo struct {
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (f *fakePostRepo) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	for _, p := range f.posts {
		cp := *p
		posts = append(posts, &cp)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) Remove(ctx context.Context, id string) error {
	delete(f.posts, id)
	return nil
}

type fakeScheduleRepo struct {
	schedules map[string]*models.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]*models.Schedule)}
}

func (f *fakeScheduleRepo) List(ctx context.Context) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	for _, s := range f.schedules {
		cp := *s
		schedules = append(schedules, &cp)
	}
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].ScheduledTime.After(schedules[j].ScheduledTime)
	})
	return schedules, nil
}

func (f *fakeScheduleRepo) ListByPlatform(ctx context.Context, platform string) ([]*models.Schedule, error) {
	all, _ := f.List(ctx)
	var schedules []*models.Schedule
	for _, s := range all {
		if s.Platform == platform {
			schedules = append(schedules, s)
		}
	}
	return schedules, nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *models.Schedule) error {
	cp := *schedule
	f.schedules[schedule.ID] = &cp
	return nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, id string, scheduledTime time.Time, status string, publishedAt *time.Time) error {
	s := f.schedules[id]
	s.ScheduledTime = scheduledTime
	s.Status = status
	s.PublishedAt = publishedAt
	return nil
}

func (f *fakeScheduleRepo) Remove(ctx context.Context, id string) error {
	delete(f.schedules, id)
	return nil
}

type fakeAnalyticsRepo struct {
	records map[string]*models.Analytics

	totalPosts     int64
	totalSchedules int64
	byStatus       []transfer.StatusCount
	byPlatform     []transfer.PlatformCount
	totals         transfer.EngagementTotals
	engagement     []transfer.PlatformEngagement
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{records: make(map[string]*models.Analytics)}
}

func (f *fakeAnalyticsRepo) List(ctx context.Context) ([]*models.AnalyticsRecord, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) ListBySchedule(ctx context.Context, scheduleID string) ([]*models.AnalyticsRecord, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) ListByPlatform(ctx context.Context, platform string) ([]*models.AnalyticsRecord, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) GetByID(ctx context.Context, id string) (*models.Analytics, error) {
	a, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAnalyticsRepo) Create(ctx context.Context, a *models.Analytics) error {
	cp := *a
	f.records[a.ID] = &cp
	return nil
}

func (f *fakeAnalyticsRepo) UpdateCounters(ctx context.Context, a *models.Analytics) error {
	cp := *a
	f.records[a.ID] = &cp
	return nil
}

func (f *fakeAnalyticsRepo) CountPosts(ctx context.Context) (int64, error) {
	return f.totalPosts, nil
}

func (f *fakeAnalyticsRepo) CountSchedules(ctx context.Context) (int64, error) {
	return f.totalSchedules, nil
}

func (f *fakeAnalyticsRepo) SchedulesByStatus(ctx context.Context) ([]transfer.StatusCount, error) {
	return f.byStatus, nil
}

func (f *fakeAnalyticsRepo) SchedulesByPlatform(ctx context.Context) ([]transfer.PlatformCount, error) {
	return f.byPlatform, nil
}

func (f *fakeAnalyticsRepo) EngagementTotals(ctx context.Context) (*transfer.EngagementTotals, error) {
	t := f.totals
	return &t, nil
}

func (f *fakeAnalyticsRepo) EngagementByPlatform(ctx context.Context) ([]transfer.PlatformEngagement, error) {
	return f.engagement, nil
}
