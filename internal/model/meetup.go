package model

import "time"

// Meetup 预约事件
// ScheduledFor 创建和改期时都必须严格晚于当前时间。
// 过了预约时间后不再出现在信息流里，但记录保留，可按 ID 查看。
// 创建者删除是硬删除，不带 DeletedAt。
type Meetup struct {
	ID           uint      `gorm:"primarykey"`
	Uuid         string    `gorm:"column:uuid;uniqueIndex;type:char(20);comment:Meetup唯一id"`
	CreatorId    string    `gorm:"column:creator_id;index;type:char(20);not null;comment:创建者"`
	Title        string    `gorm:"column:title;type:varchar(60);not null;comment:标题"`
	Description  string    `gorm:"column:description;type:varchar(500);comment:描述（可选）"`
	Latitude     float64   `gorm:"column:latitude;not null;comment:纬度"`
	Longitude    float64   `gorm:"column:longitude;not null;comment:经度"`
	Address      string    `gorm:"column:address;type:varchar(120);comment:地址（可选）"`
	ScheduledFor time.Time `gorm:"column:scheduled_for;index;not null;comment:预约时间"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Meetup) TableName() string {
	return "meetup"
}
