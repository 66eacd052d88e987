package request

// DeleteContactRequest 删除联系人请求
// 使用位置:
//   - internal/handler/contact_handler.go: DeleteContactHandler
type DeleteContactRequest struct {
	ContactId string `json:"contact_id" binding:"required"`
}
