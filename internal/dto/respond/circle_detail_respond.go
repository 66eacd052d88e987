package respond

// CircleMemberRespond 圈子成员条目
type CircleMemberRespond struct {
	ContactId    string `json:"contact_id"`
	DisplayName  string `json:"display_name"`
	LinkedUserId string `json:"linked_user_id,omitempty"`
}

// CircleDetailRespond 圈子详情（含成员列表）
// 使用位置:
//   - internal/service/circle/service.go: GetCircleDetail
type CircleDetailRespond struct {
	CircleId string                `json:"circle_id"`
	Name     string                `json:"name"`
	Emoji    string                `json:"emoji,omitempty"`
	Members  []CircleMemberRespond `json:"members"`
}
