package request

// GetEventRequest 按 ID 查看事件请求（查询参数）
// 使用位置:
//   - internal/handler/event_handler.go: GetEventHandler
type GetEventRequest struct {
	EventId   string `form:"event_id" binding:"required"`
	EventKind int8   `form:"event_kind" binding:"oneof=0 1"`
}
