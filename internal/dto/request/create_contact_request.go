package request

// CreateContactRequest 创建联系人请求
// Handle 可选；填了且对应注册用户时自动建立 linked_user_id 关联
// 使用位置:
//   - internal/handler/contact_handler.go: CreateContactHandler
type CreateContactRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=30"`
	Handle      string `json:"handle" binding:"omitempty,max=30"`
}
