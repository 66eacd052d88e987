package request

// UpdateContactRequest 更新联系人请求
// 使用位置:
//   - internal/handler/contact_handler.go: UpdateContactHandler
type UpdateContactRequest struct {
	ContactId   string `json:"contact_id" binding:"required"`
	DisplayName string `json:"display_name" binding:"required,max=30"`
}
