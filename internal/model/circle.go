package model

import "gorm.io/gorm"

// Circle 圈子：共享的最小单位
// 由且仅由 OwnerId 创建、改名、删除
type Circle struct {
	gorm.Model
	Uuid    string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:圈子唯一id"`
	OwnerId string `gorm:"column:owner_id;index;type:char(20);not null;comment:所属用户"`
	Name    string `gorm:"column:name;type:varchar(30);not null;comment:圈子名称"`
	Emoji   string `gorm:"column:emoji;type:varchar(8);comment:圈子表情"`
}

func (Circle) TableName() string {
	return "circle"
}
