package transfer

type AnalyticsCreation struct {
	ScheduleID string `json:"schedule_id"`
	Platform   string `json:"platform"`
	Likes      *int64 `json:"likes"`
	Shares     *int64 `json:"shares"`
	Comments   *int64 `json:"comments"`
	Views      *int64 `json:"views"`
	Clicks     *int64 `json:"clicks"`
}

// AnalyticsUpdate counters that are absent keep their stored values; the
// engagement rate is recomputed from whatever the row holds afterwards.
type AnalyticsUpdate struct {
	Likes    *int64 `json:"likes"`
	Shares   *int64 `json:"shares"`
	Comments *int64 `json:"comments"`
	Views    *int64 `json:"views"`
	Clicks   *int64 `json:"clicks"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

type EngagementTotals struct {
	TotalLikes        int64   `json:"total_likes"`
	TotalShares       int64   `json:"total_shares"`
	TotalComments     int64   `json:"total_comments"`
	TotalViews        int64   `json:"total_views"`
	TotalClicks       int64   `json:"total_clicks"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

type PlatformEngagement struct {
	Platform string `json:"platform"`
	EngagementTotals
}

type DashboardSummary struct {
	TotalPosts           int64                `json:"totalPosts"`
	TotalSchedules       int64                `json:"totalSchedules"`
	SchedulesByStatus    []StatusCount        `json:"schedulesByStatus"`
	SchedulesByPlatform  []PlatformCount      `json:"schedulesByPlatform"`
	TotalEngagement      EngagementTotals     `json:"totalEngagement"`
	EngagementByPlatform []PlatformEngagement `json:"engagementByPlatform"`
}
