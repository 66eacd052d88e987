package model

import "time"

// EventCircleShare 事件与圈子的共享关系
// 写入时校验 CircleId 属于事件的创建者（不能把事件共享到别人的圈子）。
// 事件删除/取消时整组硬删除。
type EventCircleShare struct {
	ID        uint      `gorm:"primarykey"`
	EventId   string    `gorm:"column:event_id;type:char(20);not null;uniqueIndex:uk_event_circle;comment:事件ID"`
	EventKind int8      `gorm:"column:event_kind;not null;uniqueIndex:uk_event_circle;comment:事件类型，0.Pin，1.Meetup"`
	CircleId  string    `gorm:"column:circle_id;type:char(20);not null;uniqueIndex:uk_event_circle;index;comment:圈子ID"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (EventCircleShare) TableName() string {
	return "event_circle_share"
}
