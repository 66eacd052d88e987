package request

// SmsLoginRequest 短信验证码登录请求
// 使用位置:
//   - internal/handler/auth_handler.go: SmsLoginHandler
type SmsLoginRequest struct {
	Telephone string `json:"telephone" binding:"required,len=11"`
	AuthCode  string `json:"auth_code" binding:"required,len=6"`
}
