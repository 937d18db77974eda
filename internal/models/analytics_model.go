package models

import "time"

type Analytics struct {
	ID             string    `db:"id" json:"id"`
	ScheduleID     string    `db:"schedule_id" json:"schedule_id"`
	Platform       string    `db:"platform" json:"platform"`
	Likes          int64     `db:"likes" json:"likes"`
	Shares         int64     `db:"shares" json:"shares"`
	Comments       int64     `db:"comments" json:"comments"`
	Views          int64     `db:"views" json:"views"`
	Clicks         int64     `db:"clicks" json:"clicks"`
	EngagementRate float64   `db:"engagement_rate" json:"engagement_rate"`
	RecordedAt     time.Time `db:"recorded_at" json:"recorded_at"`
}

// AnalyticsRecord is the list/read shape: an analytics row joined with its
// schedule (platform, scheduled_time, status) and the post content.
type AnalyticsRecord struct {
	Analytics
	ScheduledTime time.Time `db:"scheduled_time" json:"scheduled_time"`
	Status        string    `db:"status" json:"status"`
	Content       string    `db:"content" json:"content"`
}

// EngagementRate is the percentage of likes+shares+comments over views,
// zero when there are no views.
func EngagementRate(likes, shares, comments, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(likes+shares+comments) / float64(views) * 100
}
