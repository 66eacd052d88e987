package request

// DeleteMeetupRequest 删除 Meetup 请求
// 使用位置:
//   - internal/handler/event_handler.go: DeleteMeetupHandler
type DeleteMeetupRequest struct {
	MeetupId string `json:"meetup_id" binding:"required"`
}
