package model

import "gorm.io/gorm"

// Contact 联系人记录
// 有向边：OwnerId 对另一个人的单方面记录，不要求对方同意，也不自动互为联系人。
// LinkedUserId 在联系人对应注册用户时填写，是反向查找（可见性判定）的依据。
type Contact struct {
	gorm.Model
	Uuid         string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:联系人唯一id"`
	OwnerId      string `gorm:"column:owner_id;index;type:char(20);not null;comment:所属用户"`
	DisplayName  string `gorm:"column:display_name;type:varchar(30);not null;comment:显示名称"`
	Handle       string `gorm:"column:handle;type:varchar(30);comment:对方用户名柄（可选）"`
	LinkedUserId string `gorm:"column:linked_user_id;index;type:char(20);comment:关联的注册用户（可选）"`
}

func (Contact) TableName() string {
	return "contact"
}
