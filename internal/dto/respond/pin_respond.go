package respond

import "time"

// PinRespond Pin 事件内容
// 使用位置:
//   - internal/service/event/service.go
//   - internal/service/feed/service.go
type PinRespond struct {
	PinId     string    `json:"pin_id"`
	Title     string    `json:"title"`
	Note      string    `json:"note,omitempty"`
	Emoji     string    `json:"emoji,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
