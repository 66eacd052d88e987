package request

// SubmitRsvpRequest 提交/修改 RSVP 请求
// Response: 1.参加 2.不参加；重复提交覆盖之前的表态
// 使用位置:
//   - internal/handler/rsvp_handler.go: SubmitRsvpHandler
type SubmitRsvpRequest struct {
	EventId   string `json:"event_id" binding:"required"`
	EventKind int8   `json:"event_kind" binding:"oneof=0 1"`
	Response  int8   `json:"response" binding:"required,oneof=1 2"`
}
