// Package feed 实现信息流组装
// 控制流程：候选事件（存活 Pin + 未开始 Meetup）-> 每请求一次的可达圈子解析
// -> 逐事件可见性过滤 -> 出席聚合 -> 合并排序。
// 排序规则：所有 Pin 在所有 Meetup 之前；Pin 按创建时间新的在前；
// Meetup 按预约时间近的在前。
package feed

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"huddle_server/internal/dao/mysql/repository"
	"huddle_server/internal/dto/respond"
	"huddle_server/internal/model"
	"huddle_server/pkg/enum/event/event_kind_enum"
	"huddle_server/pkg/errorx"
)

// AccessResolver 信息流路径需要的可见性能力
// 批量过滤时只解析一次可达圈子，之后全部是内存判定
type AccessResolver interface {
	ResolveViewerCircles(viewerId string) (map[string]bool, error)
	CanAccess(viewerId, creatorId string, sharedCircleIds []string, viewerCircles map[string]bool) bool
}

// Aggregator 出席聚合能力
type Aggregator interface {
	Aggregate(eventId string, eventKind int8, viewerId string) (*respond.AttendanceRespond, error)
}

type feedService struct {
	repos  *repository.Repositories
	access AccessResolver
	rsvp   Aggregator
}

// NewFeedService 构造函数
func NewFeedService(repos *repository.Repositories, access AccessResolver, rsvp Aggregator) *feedService {
	return &feedService{repos: repos, access: access, rsvp: rsvp}
}

// feedCandidate 过滤阶段的中间形态
type feedCandidate struct {
	kind      int8
	creatorId string
	pin       *model.Pin
	meetup    *model.Meetup
	shares    []string
}

// BuildFeed 组装 viewer 的信息流
// now 由调用方传入，同一次请求内的所有时间比较用同一个时刻
func (f *feedService) BuildFeed(viewerId string, now time.Time) ([]respond.FeedItemRespond, error) {
	// 候选事件：存活 Pin + 未开始 Meetup
	pins, err := f.repos.Pin.FindLive(now)
	if err != nil {
		zap.L().Error("build feed: find live pins error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	meetups, err := f.repos.Meetup.FindUpcoming(now)
	if err != nil {
		zap.L().Error("build feed: find upcoming meetups error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 批量取共享关系，按事件类型各一次查询
	pinIds := make([]string, 0, len(pins))
	for _, p := range pins {
		pinIds = append(pinIds, p.Uuid)
	}
	meetupIds := make([]string, 0, len(meetups))
	for _, m := range meetups {
		meetupIds = append(meetupIds, m.Uuid)
	}
	pinShares, err := f.repos.EventShare.FindByEvents(event_kind_enum.PIN, pinIds)
	if err != nil {
		zap.L().Error("build feed: find pin shares error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	meetupShares, err := f.repos.EventShare.FindByEvents(event_kind_enum.MEETUP, meetupIds)
	if err != nil {
		zap.L().Error("build feed: find meetup shares error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 可达圈子整个请求只解析一次
	viewerCircles, err := f.access.ResolveViewerCircles(viewerId)
	if err != nil {
		return nil, err
	}

	// 可见性过滤
	candidates := make([]feedCandidate, 0, len(pins)+len(meetups))
	for i := range pins {
		pin := &pins[i]
		shares := pinShares[pin.Uuid]
		if !f.access.CanAccess(viewerId, pin.CreatorId, shares, viewerCircles) {
			continue
		}
		candidates = append(candidates, feedCandidate{
			kind:      event_kind_enum.PIN,
			creatorId: pin.CreatorId,
			pin:       pin,
			shares:    shares,
		})
	}
	for i := range meetups {
		meetup := &meetups[i]
		shares := meetupShares[meetup.Uuid]
		if !f.access.CanAccess(viewerId, meetup.CreatorId, shares, viewerCircles) {
			continue
		}
		candidates = append(candidates, feedCandidate{
			kind:      event_kind_enum.MEETUP,
			creatorId: meetup.CreatorId,
			meetup:    meetup,
			shares:    shares,
		})
	}

	// 合并排序：Pin 全部在 Meetup 之前；Pin 新的在前，Meetup 近的在前。
	// 稳定排序保证相同时间戳的条目相对顺序不抖动
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.kind != b.kind {
			return a.kind == event_kind_enum.PIN
		}
		if a.kind == event_kind_enum.PIN {
			return a.pin.CreatedAt.After(b.pin.CreatedAt)
		}
		return a.meetup.ScheduledFor.Before(b.meetup.ScheduledFor)
	})

	// 创建者摘要批量查询
	creatorIds := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if !seen[c.creatorId] {
			seen[c.creatorId] = true
			creatorIds = append(creatorIds, c.creatorId)
		}
	}
	creators := make(map[string]respond.UserSummaryRespond, len(creatorIds))
	if len(creatorIds) > 0 {
		users, err := f.repos.User.FindByUuids(creatorIds)
		if err != nil {
			zap.L().Error("build feed: batch find creators error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		for _, user := range users {
			creators[user.Uuid] = respond.UserSummaryRespond{
				UserId:   user.Uuid,
				Nickname: user.Nickname,
				Handle:   user.Handle,
				Avatar:   user.Avatar,
			}
		}
	}

	// 组装响应，逐事件带出出席聚合
	items := make([]respond.FeedItemRespond, 0, len(candidates))
	for _, c := range candidates {
		item := respond.FeedItemRespond{
			Kind:            c.kind,
			Creator:         creators[c.creatorId],
			SharedCircleIds: c.shares,
		}
		var eventId string
		if c.kind == event_kind_enum.PIN {
			eventId = c.pin.Uuid
			item.Pin = &respond.PinRespond{
				PinId:     c.pin.Uuid,
				Title:     c.pin.Title,
				Note:      c.pin.Note,
				Emoji:     c.pin.Emoji,
				Latitude:  c.pin.Latitude,
				Longitude: c.pin.Longitude,
				Address:   c.pin.Address,
				IsActive:  c.pin.IsActive,
				CreatedAt: c.pin.CreatedAt,
				ExpiresAt: c.pin.ExpiresAt,
			}
		} else {
			eventId = c.meetup.Uuid
			item.Meetup = &respond.MeetupRespond{
				MeetupId:     c.meetup.Uuid,
				Title:        c.meetup.Title,
				Description:  c.meetup.Description,
				Latitude:     c.meetup.Latitude,
				Longitude:    c.meetup.Longitude,
				Address:      c.meetup.Address,
				ScheduledFor: c.meetup.ScheduledFor,
				CreatedAt:    c.meetup.CreatedAt,
			}
		}

		attendance, err := f.rsvp.Aggregate(eventId, c.kind, viewerId)
		if err != nil {
			return nil, err
		}
		item.Attendees = attendance.Attendees
		item.AttendeeCount = attendance.AttendeeCount
		item.ViewerResponse = attendance.ViewerResponse

		items = append(items, item)
	}
	return items, nil
}
