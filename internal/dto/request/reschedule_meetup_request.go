package request

import "time"

// RescheduleMeetupRequest Meetup 改期请求
// 使用位置:
//   - internal/handler/event_handler.go: RescheduleMeetupHandler
type RescheduleMeetupRequest struct {
	MeetupId     string    `json:"meetup_id" binding:"required"`
	ScheduledFor time.Time `json:"scheduled_for" binding:"required"`
}
