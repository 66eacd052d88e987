package request

// UpdateCircleRequest 更新圈子请求
// 使用位置:
//   - internal/handler/circle_handler.go: UpdateCircleHandler
type UpdateCircleRequest struct {
	CircleId string `json:"circle_id" binding:"required"`
	Name     string `json:"name" binding:"required,max=30"`
	Emoji    string `json:"emoji" binding:"omitempty,max=8"`
}
