// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"time"

	"huddle_server/internal/dto/request"
	"huddle_server/internal/dto/respond"
)

// AuthService 认证业务接口
// 处理注册、登录、Token 刷新；身份层之后的代码完全信任中间件给出的 user_id
type AuthService interface {
	// SendSmsCode 发送短信验证码
	SendSmsCode(telephone string) error
	// Register 用户注册（注册成功即视为登录）
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// SmsLogin 短信验证码登录
	SmsLogin(req request.SmsLoginRequest) (*respond.LoginRespond, error)
	// RefreshToken 刷新 Access Token（轮换 Refresh Token）
	RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error)
	// Logout 登出，作废当前 Refresh Token
	Logout(userId string) error
}

// UserService 用户业务接口
type UserService interface {
	// GetUserInfo 获取个人资料
	GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error)
	// UpdateUserInfo 更新个人资料
	UpdateUserInfo(uuid string, req request.UpdateUserInfoRequest) error
	// ResolveHandle 按用户名柄查找用户摘要（联系人关联时使用）
	ResolveHandle(handle string) (*respond.UserSummaryRespond, error)
	// GetUserSummary 按 UUID 获取用户摘要（缓存优先）
	GetUserSummary(uuid string) (*respond.UserSummaryRespond, error)
}

// ContactService 联系人业务接口
// 联系人是单向记录，所有操作都限定在 Owner 自己的行上
type ContactService interface {
	// CreateContact 创建联系人
	CreateContact(ownerId string, req request.CreateContactRequest) (*respond.ContactRespond, error)
	// GetContactList 获取联系人列表
	GetContactList(ownerId string) ([]respond.ContactRespond, error)
	// UpdateContact 更新联系人显示名称
	UpdateContact(ownerId string, req request.UpdateContactRequest) error
	// DeleteContact 删除联系人（同时清掉它的圈子关联）
	DeleteContact(ownerId, contactId string) error
	// LinkContact 把联系人关联到一个注册用户的柄
	LinkContact(ownerId string, req request.LinkContactRequest) error
	// UnlinkContact 解除联系人与注册用户的关联
	UnlinkContact(ownerId, contactId string) error
}

// CircleService 圈子业务接口
type CircleService interface {
	// CreateCircle 创建圈子
	CreateCircle(ownerId string, req request.CreateCircleRequest) (*respond.CircleRespond, error)
	// GetCircleList 获取自己拥有的圈子列表（含成员数）
	GetCircleList(ownerId string) ([]respond.CircleRespond, error)
	// GetCircleDetail 获取圈子详情（含成员列表）
	GetCircleDetail(ownerId, circleId string) (*respond.CircleDetailRespond, error)
	// UpdateCircle 圈子改名/换表情
	UpdateCircle(ownerId string, req request.UpdateCircleRequest) error
	// DeleteCircle 删除圈子（连带成员关联和共享关系）
	DeleteCircle(ownerId, circleId string) error
	// AddCircleMember 添加圈子成员（联系人必须属于圈主本人）
	AddCircleMember(ownerId string, req request.CircleMemberRequest) error
	// RemoveCircleMember 移除圈子成员
	RemoveCircleMember(ownerId string, req request.CircleMemberRequest) error
}

// AccessService 可见性判定接口
// 这是整个服务唯一的授权判定点：列表、信息流、按 ID 查看、RSVP 写入
// 全部经过这里，读路径和写路径执行同一条规则
type AccessService interface {
	// ResolveViewerCircles 计算 viewer 的"可达圈子"集合：
	// 别人联系人簿里指向 viewer 的记录所在的圈子，并上 viewer 自己拥有的圈子
	ResolveViewerCircles(viewerId string) (map[string]bool, error)
	// CanAccess 纯判定：创建者恒可见，否则共享圈子集合与可达圈子集合相交
	// 信息流路径用它批量过滤，一次请求只解析一次可达圈子
	CanAccess(viewerId, creatorId string, sharedCircleIds []string, viewerCircles map[string]bool) bool
	// CheckEventAccess 对单个事件做完整判定
	// 事件不存在和存在但不可见返回同一个 ErrEventNotFound
	CheckEventAccess(viewerId, eventId string, eventKind int8) error
}

// EventService 事件生命周期业务接口
type EventService interface {
	// CreatePin 创建 Pin 并共享到指定圈子
	CreatePin(creatorId string, req request.CreatePinRequest) (*respond.PinRespond, error)
	// DeactivatePin 提前取消 Pin
	DeactivatePin(creatorId, pinId string) error
	// CreateMeetup 创建 Meetup 并共享到指定圈子
	CreateMeetup(creatorId string, req request.CreateMeetupRequest) (*respond.MeetupRespond, error)
	// RescheduleMeetup Meetup 改期（仍须是未来时间）
	RescheduleMeetup(creatorId string, req request.RescheduleMeetupRequest) error
	// DeleteMeetup 硬删除 Meetup（连带共享关系和 RSVP）
	DeleteMeetup(creatorId, meetupId string) error
	// GetEvent 按 ID 查看单个事件（经过可见性判定，带出席聚合）
	GetEvent(viewerId, eventId string, eventKind int8) (*respond.FeedItemRespond, error)
	// GetMyEvents 列出自己创建的事件（存活的 Pin + 全部 Meetup）
	GetMyEvents(creatorId string) ([]respond.FeedItemRespond, error)
}

// RsvpService RSVP 业务接口
type RsvpService interface {
	// Submit 提交/修改出席表态（Upsert，重复提交覆盖）
	Submit(userId string, req request.SubmitRsvpRequest) error
	// Aggregate 聚合一个事件的出席情况和 viewer 自己的表态
	Aggregate(eventId string, eventKind int8, viewerId string) (*respond.AttendanceRespond, error)
}

// FeedService 信息流业务接口
type FeedService interface {
	// BuildFeed 组装 viewer 的信息流：
	// 候选事件 -> 可见性过滤 -> 出席聚合 -> 合并排序
	BuildFeed(viewerId string, now time.Time) ([]respond.FeedItemRespond, error)
}
