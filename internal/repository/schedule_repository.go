package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/postdeck/postdeck/internal/models"
)

type ScheduleRepository interface {
	List(ctx context.Context) ([]*models.Schedule, error)
	ListByPlatform(ctx context.Context, platform string) ([]*models.Schedule, error)
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	Create(ctx context.Context, schedule *models.Schedule) error
	Update(ctx context.Context, id string, scheduledTime time.Time, status string, publishedAt *time.Time) error
	Remove(ctx context.Context, id string) error
}

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleJoin = `
	SELECT s.id, s.post_id, s.platform, s.scheduled_time, s.status, s.published_at, s.created_at,
		p.content, p.media_url
	FROM schedules s
	JOIN posts p ON s.post_id = p.id
`

func scanSchedule(row interface{ Scan(...any) error }) (*models.Schedule, error) {
	var s models.Schedule
	err := row.Scan(&s.ID, &s.PostID, &s.Platform, &s.ScheduledTime, &s.Status, &s.PublishedAt, &s.CreatedAt, &s.Content, &s.MediaURL)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepository) List(ctx context.Context) ([]*models.Schedule, error) {
	query := scheduleJoin + ` ORDER BY s.scheduled_time DESC`
	return r.queryMany(ctx, query)
}

func (r *scheduleRepository) ListByPlatform(ctx context.Context, platform string) ([]*models.Schedule, error) {
	query := scheduleJoin + ` WHERE s.platform = $1 ORDER BY s.scheduled_time DESC`
	return r.queryMany(ctx, query, platform)
}

func (r *scheduleRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	query := scheduleJoin + ` WHERE s.id = $1`
	s, err := scanSchedule(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (id, post_id, platform, scheduled_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		schedule.ID, schedule.PostID, schedule.Platform, schedule.ScheduledTime, schedule.Status, schedule.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduleRepository) Update(ctx context.Context, id string, scheduledTime time.Time, status string, publishedAt *time.Time) error {
	query := `
		UPDATE schedules
		SET scheduled_time = $1,
			status = $2,
			published_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, scheduledTime, status, publishedAt, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduleRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM schedules WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
