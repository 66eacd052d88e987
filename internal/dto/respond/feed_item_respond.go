package respond

// FeedItemRespond 信息流条目：统一包装两种事件
// Kind 决定 Pin/Meetup 哪个字段非空
// 使用位置:
//   - internal/service/feed/service.go: BuildFeed
//   - internal/service/event/service.go: GetEvent
type FeedItemRespond struct {
	Kind            int8                 `json:"kind"` // 0.Pin 1.Meetup
	Pin             *PinRespond          `json:"pin,omitempty"`
	Meetup          *MeetupRespond       `json:"meetup,omitempty"`
	Creator         UserSummaryRespond   `json:"creator"`
	SharedCircleIds []string             `json:"shared_circle_ids"`
	AttendeeCount   int                  `json:"attendee_count"`
	Attendees       []UserSummaryRespond `json:"attendees"`
	ViewerResponse  *int8                `json:"viewer_response,omitempty"`
}
