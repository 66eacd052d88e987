package respond

// AttendanceRespond 一个事件的出席聚合
// ViewerResponse 为 nil 表示当前用户尚未表态（区别于明确的"不参加"）
// 使用位置:
//   - internal/service/rsvp/service.go: Aggregate
type AttendanceRespond struct {
	Attendees      []UserSummaryRespond `json:"attendees"`
	AttendeeCount  int                  `json:"attendee_count"`
	ViewerResponse *int8                `json:"viewer_response,omitempty"`
}
