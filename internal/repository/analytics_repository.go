package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/transfer"
)

type AnalyticsRepository interface {
	List(ctx context.Context) ([]*models.AnalyticsRecord, error)
	ListBySchedule(ctx context.Context, scheduleID string) ([]*models.AnalyticsRecord, error)
	ListByPlatform(ctx context.Context, platform string) ([]*models.AnalyticsRecord, error)
	GetByID(ctx context.Context, id string) (*models.Analytics, error)
	Create(ctx context.Context, a *models.Analytics) error
	UpdateCounters(ctx context.Context, a *models.Analytics) error
	CountPosts(ctx context.Context) (int64, error)
	CountSchedules(ctx context.Context) (int64, error)
	SchedulesByStatus(ctx context.Context) ([]transfer.StatusCount, error)
	SchedulesByPlatform(ctx context.Context) ([]transfer.PlatformCount, error)
	EngagementTotals(ctx context.Context) (*transfer.EngagementTotals, error)
	EngagementByPlatform(ctx context.Context) ([]transfer.PlatformEngagement, error)
}

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

const analyticsJoin = `
	SELECT a.id, a.schedule_id, a.platform, a.likes, a.shares, a.comments, a.views, a.clicks,
		a.engagement_rate, a.recorded_at, s.scheduled_time, s.status, p.content
	FROM analytics a
	JOIN schedules s ON a.schedule_id = s.id
	JOIN posts p ON s.post_id = p.id
`

func (r *analyticsRepository) List(ctx context.Context) ([]*models.AnalyticsRecord, error) {
	query := analyticsJoin + ` ORDER BY a.recorded_at DESC`
	return r.queryMany(ctx, query)
}

func (r *analyticsRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]*models.AnalyticsRecord, error) {
	query := analyticsJoin + ` WHERE a.schedule_id = $1 ORDER BY a.recorded_at DESC`
	return r.queryMany(ctx, query, scheduleID)
}

func (r *analyticsRepository) ListByPlatform(ctx context.Context, platform string) ([]*models.AnalyticsRecord, error) {
	query := analyticsJoin + ` WHERE s.platform = $1 ORDER BY a.recorded_at DESC`
	return r.queryMany(ctx, query, platform)
}

func (r *analyticsRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.AnalyticsRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var records []*models.AnalyticsRecord
	for rows.Next() {
		var rec models.AnalyticsRecord
		err := rows.Scan(&rec.ID, &rec.ScheduleID, &rec.Platform, &rec.Likes, &rec.Shares, &rec.Comments,
			&rec.Views, &rec.Clicks, &rec.EngagementRate, &rec.RecordedAt, &rec.ScheduledTime, &rec.Status, &rec.Content)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *analyticsRepository) GetByID(ctx context.Context, id string) (*models.Analytics, error) {
	query := `
		SELECT id, schedule_id, platform, likes, shares, comments, views, clicks, engagement_rate, recorded_at
		FROM analytics
		WHERE id = $1
	`
	var a models.Analytics
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.ScheduleID, &a.Platform, &a.Likes, &a.Shares,
		&a.Comments, &a.Views, &a.Clicks, &a.EngagementRate, &a.RecordedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &a, nil
}

func (r *analyticsRepository) Create(ctx context.Context, a *models.Analytics) error {
	query := `
		INSERT INTO analytics (id, schedule_id, platform, likes, shares, comments, views, clicks, engagement_rate, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.ScheduleID, a.Platform, a.Likes, a.Shares, a.Comments,
		a.Views, a.Clicks, a.EngagementRate, a.RecordedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *analyticsRepository) UpdateCounters(ctx context.Context, a *models.Analytics) error {
	query := `
		UPDATE analytics
		SET likes = $1,
			shares = $2,
			comments = $3,
			views = $4,
			clicks = $5,
			engagement_rate = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query, a.Likes, a.Shares, a.Comments, a.Views, a.Clicks, a.EngagementRate, a.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *analyticsRepository) CountPosts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts`)
}

func (r *analyticsRepository) CountSchedules(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM schedules`)
}

func (r *analyticsRepository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return n, nil
}

func (r *analyticsRepository) SchedulesByStatus(ctx context.Context) ([]transfer.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM schedules GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	counts := []transfer.StatusCount{}
	for rows.Next() {
		var sc transfer.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) SchedulesByPlatform(ctx context.Context) ([]transfer.PlatformCount, error) {
	query := `SELECT platform, COUNT(*) FROM schedules GROUP BY platform`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	counts := []transfer.PlatformCount{}
	for rows.Next() {
		var pc transfer.PlatformCount
		if err := rows.Scan(&pc.Platform, &pc.Count); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) EngagementTotals(ctx context.Context) (*transfer.EngagementTotals, error) {
	// COALESCE keeps the totals zero-filled when the table is empty.
	query := `
		SELECT
			COALESCE(SUM(likes), 0),
			COALESCE(SUM(shares), 0),
			COALESCE(SUM(comments), 0),
			COALESCE(SUM(views), 0),
			COALESCE(SUM(clicks), 0),
			COALESCE(AVG(engagement_rate), 0)
		FROM analytics
	`
	var t transfer.EngagementTotals
	err := r.db.QueryRowContext(ctx, query).Scan(&t.TotalLikes, &t.TotalShares, &t.TotalComments,
		&t.TotalViews, &t.TotalClicks, &t.AvgEngagementRate)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &t, nil
}

func (r *analyticsRepository) EngagementByPlatform(ctx context.Context) ([]transfer.PlatformEngagement, error) {
	query := `
		SELECT
			s.platform,
			COALESCE(SUM(a.likes), 0),
			COALESCE(SUM(a.shares), 0),
			COALESCE(SUM(a.comments), 0),
			COALESCE(SUM(a.views), 0),
			COALESCE(SUM(a.clicks), 0),
			COALESCE(AVG(a.engagement_rate), 0)
		FROM analytics a
		JOIN schedules s ON a.schedule_id = s.id
		GROUP BY s.platform
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	engagement := []transfer.PlatformEngagement{}
	for rows.Next() {
		var pe transfer.PlatformEngagement
		err := rows.Scan(&pe.Platform, &pe.TotalLikes, &pe.TotalShares, &pe.TotalComments,
			&pe.TotalViews, &pe.TotalClicks, &pe.AvgEngagementRate)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		engagement = append(engagement, pe)
	}
	return engagement, rows.Err()
}
