package request

import "time"

// CreateMeetupRequest 创建 Meetup 请求
// ScheduledFor 必须严格晚于当前时间
// 使用位置:
//   - internal/handler/event_handler.go: CreateMeetupHandler
type CreateMeetupRequest struct {
	Title        string    `json:"title" binding:"required,max=60"`
	Description  string    `json:"description" binding:"omitempty,max=500"`
	Latitude     float64   `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude    float64   `json:"longitude" binding:"gte=-180,lte=180"`
	Address      string    `json:"address" binding:"omitempty,max=120"`
	ScheduledFor time.Time `json:"scheduled_for" binding:"required"`
	CircleIds    []string  `json:"circle_ids"`
}
