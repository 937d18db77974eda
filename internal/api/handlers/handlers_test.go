package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/repository"
	"github.com/postdeck/postdeck/internal/service"
	"github.com/postdeck/postdeck/internal/transfer"
)

// memStore backs the handler tests with an in-memory version of the three
// tables, including the cascade behavior the real schema gets from its
// foreign keys.
type memStore struct {
	posts     map[string]*models.Post
	schedules map[string]*models.Schedule
	analytics map[string]*models.Analytics
}

func newMemStore() *memStore {
	return &memStore{
		posts:     make(map[string]*models.Post),
		schedules: make(map[string]*models.Schedule),
		analytics: make(map[string]*models.Analytics),
	}
}

type memPosts struct{ st *memStore }

func (m memPosts) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	for _, p := range m.st.posts {
		cp := *p
		posts = append(posts, &cp)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (m memPosts) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, ok := m.st.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m memPosts) Create(ctx context.Context, post *models.Post) error {
	cp := *post
	m.st.posts[post.ID] = &cp
	return nil
}

func (m memPosts) Update(ctx context.Context, post *models.Post) error {
	cp := *post
	m.st.posts[post.ID] = &cp
	return nil
}

func (m memPosts) Remove(ctx context.Context, id string) error {
	delete(m.st.posts, id)
	for sid, s := range m.st.schedules {
		if s.PostID == id {
			delete(m.st.schedules, sid)
			for aid, a := range m.st.analytics {
				if a.ScheduleID == sid {
					delete(m.st.analytics, aid)
				}
			}
		}
	}
	return nil
}

type memSchedules struct{ st *memStore }

func (m memSchedules) join(s *models.Schedule) *models.Schedule {
	cp := *s
	if p, ok := m.st.posts[s.PostID]; ok {
		cp.Content = p.Content
		cp.MediaURL = p.MediaURL
	}
	return &cp
}

func (m memSchedules) List(ctx context.Context) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	for _, s := range m.st.schedules {
		schedules = append(schedules, m.join(s))
	}
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].ScheduledTime.After(schedules[j].ScheduledTime)
	})
	return schedules, nil
}

func (m memSchedules) ListByPlatform(ctx context.Context, platform string) ([]*models.Schedule, error) {
	all, _ := m.List(ctx)
	var schedules []*models.Schedule
	for _, s := range all {
		if s.Platform == platform {
			schedules = append(schedules, s)
		}
	}
	return schedules, nil
}

func (m memSchedules) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	s, ok := m.st.schedules[id]
	if !ok {
		return nil, nil
	}
	return m.join(s), nil
}

func (m memSchedules) Create(ctx context.Context, schedule *models.Schedule) error {
	cp := *schedule
	m.st.schedules[schedule.ID] = &cp
	return nil
}

func (m memSchedules) Update(ctx context.Context, id string, scheduledTime time.Time, status string, publishedAt *time.Time) error {
	s := m.st.schedules[id]
	s.ScheduledTime = scheduledTime
	s.Status = status
	s.PublishedAt = publishedAt
	return nil
}

func (m memSchedules) Remove(ctx context.Context, id string) error {
	delete(m.st.schedules, id)
	for aid, a := range m.st.analytics {
		if a.ScheduleID == id {
			delete(m.st.analytics, aid)
		}
	}
	return nil
}

type memAnalytics struct{ st *memStore }

func (m memAnalytics) record(a *models.Analytics) *models.AnalyticsRecord {
	rec := models.AnalyticsRecord{Analytics: *a}
	if s, ok := m.st.schedules[a.ScheduleID]; ok {
		rec.ScheduledTime = s.ScheduledTime
		rec.Status = s.Status
		if p, ok := m.st.posts[s.PostID]; ok {
			rec.Content = p.Content
		}
	}
	return &rec
}

func (m memAnalytics) List(ctx context.Context) ([]*models.AnalyticsRecord, error) {
	var records []*models.AnalyticsRecord
	for _, a := range m.st.analytics {
		records = append(records, m.record(a))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].RecordedAt.After(records[j].RecordedAt) })
	return records, nil
}

func (m memAnalytics) ListBySchedule(ctx context.Context, scheduleID string) ([]*models.AnalyticsRecord, error) {
	all, _ := m.List(ctx)
	var records []*models.AnalyticsRecord
	for _, r := range all {
		if r.ScheduleID == scheduleID {
			records = append(records, r)
		}
	}
	return records, nil
}

func (m memAnalytics) ListByPlatform(ctx context.Context, platform string) ([]*models.AnalyticsRecord, error) {
	all, _ := m.List(ctx)
	var records []*models.AnalyticsRecord
	for _, r := range all {
		if r.Platform == platform {
			records = append(records, r)
		}
	}
	return records, nil
}

func (m memAnalytics) GetByID(ctx context.Context, id string) (*models.Analytics, error) {
	a, ok := m.st.analytics[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m memAnalytics) Create(ctx context.Context, a *models.Analytics) error {
	cp := *a
	m.st.analytics[a.ID] = &cp
	return nil
}

func (m memAnalytics) UpdateCounters(ctx context.Context, a *models.Analytics) error {
	cp := *a
	m.st.analytics[a.ID] = &cp
	return nil
}

func (m memAnalytics) CountPosts(ctx context.Context) (int64, error) {
	return int64(len(m.st.posts)), nil
}

func (m memAnalytics) CountSchedules(ctx context.Context) (int64, error) {
	return int64(len(m.st.schedules)), nil
}

func (m memAnalytics) SchedulesByStatus(ctx context.Context) ([]transfer.StatusCount, error) {
	grouped := make(map[string]int64)
	for _, s := range m.st.schedules {
		grouped[s.Status]++
	}
	counts := []transfer.StatusCount{}
	for status, n := range grouped {
		counts = append(counts, transfer.StatusCount{Status: status, Count: n})
	}
	return counts, nil
}

func (m memAnalytics) SchedulesByPlatform(ctx context.Context) ([]transfer.PlatformCount, error) {
	grouped := make(map[string]int64)
	for _, s := range m.st.schedules {
		grouped[s.Platform]++
	}
	counts := []transfer.PlatformCount{}
	for platform, n := range grouped {
		counts = append(counts, transfer.PlatformCount{Platform: platform, Count: n})
	}
	return counts, nil
}

func (m memAnalytics) EngagementTotals(ctx context.Context) (*transfer.EngagementTotals, error) {
	var t transfer.EngagementTotals
	var n int64
	for _, a := range m.st.analytics {
		t.TotalLikes += a.Likes
		t.TotalShares += a.Shares
		t.TotalComments += a.Comments
		t.TotalViews += a.Views
		t.TotalClicks += a.Clicks
		t.AvgEngagementRate += a.EngagementRate
		n++
	}
	if n > 0 {
		t.AvgEngagementRate /= float64(n)
	}
	return &t, nil
}

func (m memAnalytics) EngagementByPlatform(ctx context.Context) ([]transfer.PlatformEngagement, error) {
	grouped := make(map[string]*transfer.PlatformEngagement)
	counts := make(map[string]int64)
	for _, a := range m.st.analytics {
		pe, ok := grouped[a.Platform]
		if !ok {
			pe = &transfer.PlatformEngagement{Platform: a.Platform}
			grouped[a.Platform] = pe
		}
		pe.TotalLikes += a.Likes
		pe.TotalShares += a.Shares
		pe.TotalComments += a.Comments
		pe.TotalViews += a.Views
		pe.TotalClicks += a.Clicks
		pe.AvgEngagementRate += a.EngagementRate
		counts[a.Platform]++
	}
	engagement := []transfer.PlatformEngagement{}
	for platform, pe := range grouped {
		pe.AvgEngagementRate /= float64(counts[platform])
		engagement = append(engagement, *pe)
	}
	return engagement, nil
}

var (
	_ repository.PostRepository      = memPosts{}
	_ repository.ScheduleRepository  = memSchedules{}
	_ repository.AnalyticsRepository = memAnalytics{}
)

// newTestApp wires the full route surface against an in-memory store.
func newTestApp() *fiber.App {
	st := newMemStore()

	postRepo := memPosts{st}
	scheduleRepo := memSchedules{st}
	analyticsRepo := memAnalytics{st}

	postService := service.NewPostService(postRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, postRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, scheduleRepo)

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/health", Health)

	post := NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/:id", post.GetPost)
	api.Post("/posts", post.CreatePost)
	api.Put("/posts/:id", post.UpdatePost)
	api.Delete("/posts/:id", post.DeletePost)

	schedule := NewScheduleHandler(scheduleService)
	api.Get("/schedules", schedule.ListSchedules)
	api.Get("/schedules/platform/:platform", schedule.ListSchedulesByPlatform)
	api.Get("/schedules/:id", schedule.GetSchedule)
	api.Post("/schedules", schedule.CreateSchedule)
	api.Put("/schedules/:id", schedule.UpdateSchedule)
	api.Delete("/schedules/:id", schedule.DeleteSchedule)

	analytics := NewAnalyticsHandler(analyticsService)
	api.Get("/analytics", analytics.ListAnalytics)
	api.Get("/analytics/schedule/:scheduleId", analytics.ListAnalyticsBySchedule)
	api.Get("/analytics/platform/:platform", analytics.ListAnalyticsByPlatform)
	api.Get("/analytics/dashboard/summary", analytics.DashboardSummary)
	api.Post("/analytics", analytics.CreateAnalytics)
	api.Put("/analytics/:id", analytics.UpdateAnalytics)

	return app
}
