package request

// DeleteCircleRequest 删除圈子请求
// 使用位置:
//   - internal/handler/circle_handler.go: DeleteCircleHandler
type DeleteCircleRequest struct {
	CircleId string `json:"circle_id" binding:"required"`
}
