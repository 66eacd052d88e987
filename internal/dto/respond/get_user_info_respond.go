package respond

// GetUserInfoRespond 个人资料响应
// 使用位置:
//   - internal/service/user/service.go: GetUserInfo
type GetUserInfoRespond struct {
	Uuid      string `json:"uuid"`
	Nickname  string `json:"nickname"`
	Handle    string `json:"handle"`
	Telephone string `json:"telephone"`
	Avatar    string `json:"avatar"`
}
