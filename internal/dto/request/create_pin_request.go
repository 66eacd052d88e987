package request

// CreatePinRequest 创建 Pin 请求
// CircleIds 是要共享到的圈子，必须都属于创建者本人
// 使用位置:
//   - internal/handler/event_handler.go: CreatePinHandler
type CreatePinRequest struct {
	Title     string   `json:"title" binding:"required,max=60"`
	Note      string   `json:"note" binding:"omitempty,max=200"`
	Emoji     string   `json:"emoji" binding:"omitempty,max=8"`
	Latitude  float64  `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude float64  `json:"longitude" binding:"gte=-180,lte=180"`
	Address   string   `json:"address" binding:"omitempty,max=120"`
	CircleIds []string `json:"circle_ids"`
}
