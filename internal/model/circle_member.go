package model

import "time"

// CircleMember 圈子成员关联表
// 关联的是 Contact 而不是 User：圈子成员永远来自圈主自己的联系人簿。
// 写入时校验 Contact 与 Circle 属于同一个 Owner。
// 硬删除语义，不带 DeletedAt。
type CircleMember struct {
	ID        uint      `gorm:"primarykey"`
	CircleId  string    `gorm:"column:circle_id;type:char(20);not null;uniqueIndex:uk_circle_contact;comment:圈子ID"`
	ContactId string    `gorm:"column:contact_id;type:char(20);not null;uniqueIndex:uk_circle_contact;index;comment:联系人ID"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (CircleMember) TableName() string {
	return "circle_member"
}
