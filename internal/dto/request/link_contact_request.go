package request

// LinkContactRequest 把联系人关联到注册用户请求
// 使用位置:
//   - internal/handler/contact_handler.go: LinkContactHandler
type LinkContactRequest struct {
	ContactId string `json:"contact_id" binding:"required"`
	Handle    string `json:"handle" binding:"required,max=30"`
}
