package respond

// ContactRespond 联系人条目
// 使用位置:
//   - internal/service/contact/service.go: GetContactList
type ContactRespond struct {
	ContactId    string `json:"contact_id"`
	DisplayName  string `json:"display_name"`
	Handle       string `json:"handle,omitempty"`
	LinkedUserId string `json:"linked_user_id,omitempty"`
}
