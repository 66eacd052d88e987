package request

// LoginRequest 密码登录请求
// 使用位置:
//   - internal/handler/auth_handler.go: LoginHandler
type LoginRequest struct {
	Telephone string `json:"telephone" binding:"required,len=11"`
	Password  string `json:"password" binding:"required"`
}
