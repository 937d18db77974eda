package models

import (
	"strings"
	"time"
)

// Schedule rows are always served joined with the owning post's content and
// media_url, matching what the scheduling UI renders in its list view.
type Schedule struct {
	ID            string     `db:"id" json:"id"`
	PostID        string     `db:"post_id" json:"post_id"`
	Platform      string     `db:"platform" json:"platform"`
	ScheduledTime time.Time  `db:"scheduled_time" json:"scheduled_time"`
	Status        string     `db:"status" json:"status"`
	PublishedAt   *time.Time `db:"published_at" json:"published_at"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	Content       string     `db:"content" json:"content"`
	MediaURL      *string    `db:"media_url" json:"media_url"`
}

const (
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
)

const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusPublished = "published"
	ScheduleStatusFailed    = "failed"
)

// NormalizePlatform lowercases a platform name; platforms are stored lowercase.
func NormalizePlatform(platform string) string {
	return strings.ToLower(platform)
}

func IsValidPlatform(platform string) bool {
	switch NormalizePlatform(platform) {
	case PlatformFacebook, PlatformTwitter, PlatformInstagram:
		return true
	}
	return false
}

func IsValidScheduleStatus(status string) bool {
	switch status {
	case ScheduleStatusPending, ScheduleStatusPublished, ScheduleStatusFailed:
		return true
	}
	return false
}
