// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"time"

	"huddle_server/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByUuid 根据 UUID 查找用户
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByTelephone 根据手机号查找用户
	FindByTelephone(telephone string) (*model.UserInfo, error)
	// FindByHandle 根据用户名柄查找用户（柄统一小写存储，查询前由调用方归一化）
	FindByHandle(handle string) (*model.UserInfo, error)
	// FindByUuids 批量根据 UUID 查找用户
	FindByUuids(uuids []string) ([]model.UserInfo, error)
	// Create 创建新用户
	Create(user *model.UserInfo) error
	// Update 更新用户信息
	Update(user *model.UserInfo) error
}

// ContactRepository 联系人数据访问接口
// 联系人是 Owner 的单向记录，所有写操作都限定在 Owner 自己的行上
type ContactRepository interface {
	// FindByUuid 根据 UUID 查找联系人
	FindByUuid(uuid string) (*model.Contact, error)
	// FindByOwnerId 查找某用户的全部联系人
	FindByOwnerId(ownerId string) ([]model.Contact, error)
	// FindByLinkedUserId 反向查找：全库中 linked_user_id 指向该用户的联系人记录
	// 这是可见性判定的入口——别人把"我"记为联系人的那些行
	FindByLinkedUserId(linkedUserId string) ([]model.Contact, error)
	// Create 创建联系人
	Create(contact *model.Contact) error
	// Update 更新联系人
	Update(contact *model.Contact) error
	// SoftDelete 软删除联系人
	SoftDelete(uuid string) error
}

// CircleRepository 圈子数据访问接口
type CircleRepository interface {
	// FindByUuid 根据 UUID 查找圈子
	FindByUuid(uuid string) (*model.Circle, error)
	// FindByOwnerId 查找某用户拥有的全部圈子
	FindByOwnerId(ownerId string) ([]model.Circle, error)
	// FindUuidsByOwnerId 查找某用户拥有的全部圈子 UUID
	FindUuidsByOwnerId(ownerId string) ([]string, error)
	// FindByUuids 批量根据 UUID 查找圈子
	FindByUuids(uuids []string) ([]model.Circle, error)
	// Create 创建圈子
	Create(circle *model.Circle) error
	// Update 更新圈子
	Update(circle *model.Circle) error
	// SoftDelete 软删除圈子
	SoftDelete(uuid string) error
}

// CircleMemberRepository 圈子成员数据访问接口
type CircleMemberRepository interface {
	// FindByCircleId 查找圈子的全部成员关联
	FindByCircleId(circleId string) ([]model.CircleMember, error)
	// FindCircleIdsByContactIds 查找这些联系人被放进的全部圈子 ID（去重）
	// 可见性判定第二步：反向联系人 -> 所在圈子
	FindCircleIdsByContactIds(contactIds []string) ([]string, error)
	// CountByCircleIds 统计每个圈子的成员数
	CountByCircleIds(circleIds []string) (map[string]int64, error)
	// Create 添加圈子成员
	Create(member *model.CircleMember) error
	// Delete 移除圈子成员
	Delete(circleId, contactId string) error
	// DeleteByCircleId 删除圈子的全部成员关联（解散圈子时）
	DeleteByCircleId(circleId string) error
	// DeleteByContactId 删除某联系人的全部圈子关联（删除联系人时）
	DeleteByContactId(contactId string) error
}

// PinRepository Pin 数据访问接口
type PinRepository interface {
	// FindByUuid 根据 UUID 查找 Pin
	FindByUuid(uuid string) (*model.Pin, error)
	// FindLive 查找全部存活的 Pin（is_active 且未过期）
	FindLive(now time.Time) ([]model.Pin, error)
	// FindByCreatorId 查找某用户创建的全部 Pin
	FindByCreatorId(creatorId string) ([]model.Pin, error)
	// Create 创建 Pin
	Create(pin *model.Pin) error
	// UpdateActive 更新 Pin 的有效标志（提前取消）
	UpdateActive(uuid string, active bool) error
}

// MeetupRepository Meetup 数据访问接口
type MeetupRepository interface {
	// FindByUuid 根据 UUID 查找 Meetup
	FindByUuid(uuid string) (*model.Meetup, error)
	// FindUpcoming 查找全部未开始的 Meetup（scheduled_for >= now）
	FindUpcoming(now time.Time) ([]model.Meetup, error)
	// FindByCreatorId 查找某用户创建的全部 Meetup
	FindByCreatorId(creatorId string) ([]model.Meetup, error)
	// Create 创建 Meetup
	Create(meetup *model.Meetup) error
	// Update 更新 Meetup（改期等）
	Update(meetup *model.Meetup) error
	// Delete 硬删除 Meetup
	Delete(uuid string) error
}

// EventShareRepository 事件共享关系数据访问接口
type EventShareRepository interface {
	// FindCircleIdsByEvent 查找单个事件共享到的圈子 ID
	FindCircleIdsByEvent(eventId string, eventKind int8) ([]string, error)
	// FindByEvents 批量查找事件的共享圈子，返回 eventId -> circleIds
	// 信息流组装用，避免每个事件一次查询
	FindByEvents(eventKind int8, eventIds []string) (map[string][]string, error)
	// CreateBatch 批量写入共享关系
	CreateBatch(shares []model.EventCircleShare) error
	// DeleteByEvent 删除事件的全部共享关系
	DeleteByEvent(eventId string, eventKind int8) error
	// DeleteByCircleId 删除圈子的全部共享关系（解散圈子时）
	DeleteByCircleId(circleId string) error
}

// RsvpRepository RSVP 数据访问接口
type RsvpRepository interface {
	// Upsert 插入或覆盖 RSVP
	// 以 (user_id, event_id, event_kind) 唯一索引为冲突键的原子插入或更新；
	// 并发重复提交收敛成一行，唯一冲突不会抛给调用方
	Upsert(rsvp *model.Rsvp) error
	// FindByEvent 查找事件的全部 RSVP
	FindByEvent(eventId string, eventKind int8) ([]model.Rsvp, error)
	// FindByUserAndEvent 查找用户对某事件的 RSVP
	// 没有记录返回 (nil, nil)——"尚未表态"不是错误
	FindByUserAndEvent(userId, eventId string, eventKind int8) (*model.Rsvp, error)
	// DeleteByEvent 删除事件的全部 RSVP（事件被删除时）
	DeleteByEvent(eventId string, eventKind int8) error
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db           *gorm.DB
	User         UserRepository
	Contact      ContactRepository
	Circle       CircleRepository
	CircleMember CircleMemberRepository
	Pin          PinRepository
	Meetup       MeetupRepository
	EventShare   EventShareRepository
	Rsvp         RsvpRepository
}

// NewRepositories 创建所有 Repository 实例
// db: GORM 数据库实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		User:         NewUserRepository(db),
		Contact:      NewContactRepository(db),
		Circle:       NewCircleRepository(db),
		CircleMember: NewCircleMemberRepository(db),
		Pin:          NewPinRepository(db),
		Meetup:       NewMeetupRepository(db),
		EventShare:   NewEventShareRepository(db),
		Rsvp:         NewRsvpRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		// 没有数据库实例的聚合（如直接用字面量注入的实现）退化为顺序执行
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
