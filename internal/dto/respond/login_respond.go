package respond

// LoginRespond 登录响应（密码登录和短信登录共用）
// 使用位置:
//   - internal/service/auth/service.go: Login, SmsLogin
type LoginRespond struct {
	Uuid         string `json:"uuid"`
	Nickname     string `json:"nickname"`
	Handle       string `json:"handle"`
	Avatar       string `json:"avatar"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
