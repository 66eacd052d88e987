package respond

// UserSummaryRespond 用户摘要
// 出席者列表、创建者信息等处复用的最小用户信息
// 使用位置:
//   - internal/service/rsvp/service.go: Aggregate
//   - internal/service/feed/service.go: BuildFeed
type UserSummaryRespond struct {
	UserId   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Handle   string `json:"handle"`
	Avatar   string `json:"avatar"`
}
