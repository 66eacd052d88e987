package respond

// RegisterRespond 注册响应，注册成功即视为登录
// 使用位置:
//   - internal/service/auth/service.go: Register
type RegisterRespond struct {
	Uuid         string `json:"uuid"`
	Nickname     string `json:"nickname"`
	Handle       string `json:"handle"`
	Avatar       string `json:"avatar"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
