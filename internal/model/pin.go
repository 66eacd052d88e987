package model

import (
	"time"

	"gorm.io/gorm"
)

// Pin 即时事件
// 创建时固定 ExpiresAt = CreatedAt + constants.PinTTL()；
// 过期是读取时的纯时间比较，没有后台清理进程。
// 创建者可以提前把 IsActive 置为 false（软取消）。
type Pin struct {
	gorm.Model
	Uuid      string    `gorm:"column:uuid;uniqueIndex;type:char(20);comment:Pin唯一id"`
	CreatorId string    `gorm:"column:creator_id;index;type:char(20);not null;comment:创建者"`
	Title     string    `gorm:"column:title;type:varchar(60);not null;comment:标题"`
	Note      string    `gorm:"column:note;type:varchar(200);comment:备注（可选）"`
	Emoji     string    `gorm:"column:emoji;type:varchar(8);comment:表情"`
	Latitude  float64   `gorm:"column:latitude;not null;comment:纬度"`
	Longitude float64   `gorm:"column:longitude;not null;comment:经度"`
	Address   string    `gorm:"column:address;type:varchar(120);comment:地址（可选）"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true;comment:是否有效"`
	ExpiresAt time.Time `gorm:"column:expires_at;index;not null;comment:过期时间"`
}

func (Pin) TableName() string {
	return "pin"
}

// Live Pin 在 now 时刻是否仍然有效
func (p *Pin) Live(now time.Time) bool {
	return p.IsActive && p.ExpiresAt.After(now)
}
