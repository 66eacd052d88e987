package respond

// CircleRespond 圈子条目（含成员数）
// 使用位置:
//   - internal/service/circle/service.go: GetCircleList
type CircleRespond struct {
	CircleId    string `json:"circle_id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji,omitempty"`
	MemberCount int64  `json:"member_count"`
}
