package respond

import "time"

// MeetupRespond Meetup 事件内容
// 使用位置:
//   - internal/service/event/service.go
//   - internal/service/feed/service.go
type MeetupRespond struct {
	MeetupId     string    `json:"meetup_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Address      string    `json:"address,omitempty"`
	ScheduledFor time.Time `json:"scheduled_for"`
	CreatedAt    time.Time `json:"created_at"`
}
