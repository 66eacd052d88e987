package request

// UpdateUserInfoRequest 更新个人资料请求
// 使用位置:
//   - internal/handler/user_handler.go: UpdateUserInfoHandler
type UpdateUserInfoRequest struct {
	Nickname string `json:"nickname" binding:"omitempty,max=30"`
	Avatar   string `json:"avatar" binding:"omitempty,max=255"`
}
