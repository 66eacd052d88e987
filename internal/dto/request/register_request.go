package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - internal/handler/auth_handler.go: RegisterHandler
//   - internal/service/auth/service.go: Register
type RegisterRequest struct {
	Telephone string `json:"telephone" binding:"required,len=11"`
	AuthCode  string `json:"auth_code" binding:"required,len=6"`
	Nickname  string `json:"nickname" binding:"required,max=30"`
	Handle    string `json:"handle" binding:"required,min=3,max=30"`
	Password  string `json:"password" binding:"required,min=8,max=64"`
	Avatar    string `json:"avatar"`
}
