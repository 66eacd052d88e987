package request

// CircleMemberRequest 添加/移除圈子成员请求
// 使用位置:
//   - internal/handler/circle_handler.go: AddCircleMemberHandler, RemoveCircleMemberHandler
type CircleMemberRequest struct {
	CircleId  string `json:"circle_id" binding:"required"`
	ContactId string `json:"contact_id" binding:"required"`
}
