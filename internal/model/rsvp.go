package model

import "time"

// Rsvp 用户对一个事件的出席表态
// (UserId, EventId, EventKind) 唯一：同一用户对同一事件再次表态是覆盖而不是新增。
// 唯一索引是 Upsert 的冲突键，并发重复提交由数据库收敛成一行。
type Rsvp struct {
	ID        uint      `gorm:"primarykey"`
	UserId    string    `gorm:"column:user_id;type:char(20);not null;uniqueIndex:uk_user_event;comment:用户ID"`
	EventId   string    `gorm:"column:event_id;type:char(20);not null;uniqueIndex:uk_user_event;index:idx_event;comment:事件ID"`
	EventKind int8      `gorm:"column:event_kind;not null;uniqueIndex:uk_user_event;index:idx_event;comment:事件类型，0.Pin，1.Meetup"`
	Response  int8      `gorm:"column:response;not null;comment:回应，1.参加，2.不参加"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Rsvp) TableName() string {
	return "rsvp"
}
