// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"huddle_server/internal/dao/mysql/repository"
	myredis "huddle_server/internal/dao/redis"
	"huddle_server/internal/infrastructure/sms"
	"huddle_server/internal/service/access"
	"huddle_server/internal/service/auth"
	"huddle_server/internal/service/circle"
	"huddle_server/internal/service/contact"
	"huddle_server/internal/service/event"
	"huddle_server/internal/service/feed"
	"huddle_server/internal/service/rsvp"
	"huddle_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	Auth    AuthService    // 认证 Service
	User    UserService    // 用户 Service
	Contact ContactService // 联系人 Service
	Circle  CircleService  // 圈子 Service
	Access  AccessService  // 可见性判定 Service
	Event   EventService   // 事件 Service
	Rsvp    RsvpService    // RSVP Service
	Feed    FeedService    // 信息流 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖顺序：access 不依赖其他 Service；rsvp 依赖 access 做写路径判定；
// event 和 feed 依赖 access 与 rsvp
//
// repos: Repository 层聚合实例
// cache: 缓存服务
// smsService: 短信服务
// 返回: Services 聚合指针
func NewServices(repos *repository.Repositories, cache myredis.CacheService, smsService sms.SmsService) *Services {
	accessSvc := access.NewAccessService(repos)
	rsvpSvc := rsvp.NewRsvpService(repos, accessSvc)
	eventSvc := event.NewEventService(repos, accessSvc, rsvpSvc)
	feedSvc := feed.NewFeedService(repos, accessSvc, rsvpSvc)
	circleSvc := circle.NewCircleService(repos)
	contactSvc := contact.NewContactService(repos)
	userSvc := user.NewUserService(repos, cache)
	authSvc := auth.NewAuthService(repos, cache, smsService)

	return &Services{
		Auth:    authSvc,
		User:    userSvc,
		Contact: contactSvc,
		Circle:  circleSvc,
		Access:  accessSvc,
		Event:   eventSvc,
		Rsvp:    rsvpSvc,
		Feed:    feedSvc,
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Feed.BuildFeed() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository、Redis、短信服务初始化之后
func InitServices(repos *repository.Repositories, cache myredis.CacheService, smsService sms.SmsService) {
	Svc = NewServices(repos, cache, smsService)
}
