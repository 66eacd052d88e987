package request

// DeactivatePinRequest 提前取消 Pin 请求
// 使用位置:
//   - internal/handler/event_handler.go: DeactivatePinHandler
type DeactivatePinRequest struct {
	PinId string `json:"pin_id" binding:"required"`
}
