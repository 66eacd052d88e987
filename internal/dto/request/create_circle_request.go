package request

// CreateCircleRequest 创建圈子请求
// 使用位置:
//   - internal/handler/circle_handler.go: CreateCircleHandler
type CreateCircleRequest struct {
	Name  string `json:"name" binding:"required,max=30"`
	Emoji string `json:"emoji" binding:"omitempty,max=8"`
}
