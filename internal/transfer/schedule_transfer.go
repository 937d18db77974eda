package transfer

type ScheduleCreation struct {
	PostID        string `json:"post_id"`
	Platform      string `json:"platform"`
	ScheduledTime string `json:"scheduled_time"`
}

type ScheduleUpdate struct {
	ScheduledTime *string `json:"scheduled_time"`
	Status        *string `json:"status"`
}
