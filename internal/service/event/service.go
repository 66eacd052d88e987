// Package event 实现事件生命周期业务逻辑
// Pin：创建即固定 4 小时过期窗口，可提前取消，不能改期。
// Meetup：预约时间必须是未来，可改期（仍须未来），可硬删除。
// 两种事件的共享圈子在创建时一次确定，之后不可增删。
package event

import (
	"context"
	"time"

	"go.uber.org/zap"

	"huddle_server/internal/dao/mysql/repository"
	"huddle_server/internal/dto/request"
	"huddle_server/internal/dto/respond"
	"huddle_server/internal/infrastructure/mq"
	"huddle_server/internal/model"
	"huddle_server/pkg/constants"
	"huddle_server/pkg/enum/event/event_kind_enum"
	"huddle_server/pkg/enum/signal/signal_kind_enum"
	"huddle_server/pkg/errorx"
	"huddle_server/pkg/util/random"
	"huddle_server/pkg/util/snowflake"
)

// AccessChecker 读路径需要的可见性判定能力
type AccessChecker interface {
	CheckEventAccess(viewerId, eventId string, eventKind int8) error
}

// Aggregator 出席聚合能力
type Aggregator interface {
	Aggregate(eventId string, eventKind int8, viewerId string) (*respond.AttendanceRespond, error)
}

type eventService struct {
	repos  *repository.Repositories
	access AccessChecker
	rsvp   Aggregator
}

// NewEventService 构造函数
func NewEventService(repos *repository.Repositories, access AccessChecker, rsvp Aggregator) *eventService {
	return &eventService{repos: repos, access: access, rsvp: rsvp}
}

// checkCircleOwnership 校验共享目标圈子都存在且属于创建者本人
// 把事件共享到别人的圈子是越权写入，直接拒绝
func (e *eventService) checkCircleOwnership(creatorId string, circleIds []string) error {
	if len(circleIds) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(circleIds))
	for _, id := range circleIds {
		if seen[id] {
			return errorx.New(errorx.CodeInvalidParam, "共享圈子重复")
		}
		seen[id] = true
	}
	circles, err := e.repos.Circle.FindByUuids(circleIds)
	if err != nil {
		zap.L().Error("check circle ownership: batch find error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if len(circles) != len(circleIds) {
		return errorx.New(errorx.CodeNotFound, "圈子不存在")
	}
	for _, c := range circles {
		if c.OwnerId != creatorId {
			return errorx.New(errorx.CodeForbidden, "不能共享到他人的圈子")
		}
	}
	return nil
}

// rejectForeignMutation 非创建者的写操作统一出口
// 先走读路径同一条可见性规则：看不见这个事件的调用方拿到的仍然是"事件不存在"，
// 避免通过写接口的报错区分"不存在"和"存在但未共享"；
// 能看见但不是创建者的，才返回无权操作
func (e *eventService) rejectForeignMutation(callerId, eventId string, eventKind int8, forbiddenMsg string) error {
	if err := e.access.CheckEventAccess(callerId, eventId, eventKind); err != nil {
		return err
	}
	return errorx.New(errorx.CodeForbidden, forbiddenMsg)
}

// publishShared 发出事件共享信号，best-effort
func publishShared(eventId string, eventKind int8, actorId string, circleIds []string) {
	sig := mq.Signal{
		Id:        snowflake.GenerateIDString(),
		Kind:      signal_kind_enum.EVENT_SHARED,
		EventId:   eventId,
		EventKind: eventKind,
		ActorId:   actorId,
		CircleIds: circleIds,
		CreatedAt: time.Now(),
	}
	if err := mq.Publish(context.Background(), sig); err != nil {
		zap.L().Warn("publish event shared signal error", zap.Error(err),
			zap.String("event_id", eventId))
	}
}

// CreatePin 创建 Pin 并共享到指定圈子
// Pin 本体先落库；共享关系写入失败只记日志，不回滚 Pin 本身
func (e *eventService) CreatePin(creatorId string, req request.CreatePinRequest) (*respond.PinRespond, error) {
	if err := e.checkCircleOwnership(creatorId, req.CircleIds); err != nil {
		return nil, err
	}

	now := time.Now()
	pin := &model.Pin{
		Uuid:      "P" + random.GetNowAndLenRandomString(13),
		CreatorId: creatorId,
		Title:     req.Title,
		Note:      req.Note,
		Emoji:     req.Emoji,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		IsActive:  true,
		ExpiresAt: now.Add(constants.PinTTL()),
	}

	if err := e.repos.Pin.Create(pin); err != nil {
		zap.L().Error("create pin error", zap.Error(err), zap.String("creator_id", creatorId))
		return nil, errorx.ErrServerBusy
	}
	if err := e.repos.EventShare.CreateBatch(buildShares(pin.Uuid, event_kind_enum.PIN, req.CircleIds)); err != nil {
		// 共享关系是附加信息，写入失败不影响 Pin 本体的存在
		zap.L().Warn("create pin: share write error", zap.Error(err), zap.String("pin_id", pin.Uuid))
	}

	publishShared(pin.Uuid, event_kind_enum.PIN, creatorId, req.CircleIds)

	return &respond.PinRespond{
		PinId:     pin.Uuid,
		Title:     pin.Title,
		Note:      pin.Note,
		Emoji:     pin.Emoji,
		Latitude:  pin.Latitude,
		Longitude: pin.Longitude,
		Address:   pin.Address,
		IsActive:  pin.IsActive,
		CreatedAt: pin.CreatedAt,
		ExpiresAt: pin.ExpiresAt,
	}, nil
}

// DeactivatePin 提前取消 Pin
// 只有创建者可以取消；取消是幂等的软标记，过期时间不变
func (e *eventService) DeactivatePin(creatorId, pinId string) error {
	pin, err := e.repos.Pin.FindByUuid(pinId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.ErrEventNotFound
		}
		zap.L().Error("deactivate pin: find error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if pin.CreatorId != creatorId {
		return e.rejectForeignMutation(creatorId, pinId, event_kind_enum.PIN, "只有创建者可以取消")
	}
	if !pin.IsActive {
		return nil // 已取消，幂等
	}
	if err := e.repos.Pin.UpdateActive(pinId, false); err != nil {
		zap.L().Error("deactivate pin: update error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// CreateMeetup 创建 Meetup 并共享到指定圈子
func (e *eventService) CreateMeetup(creatorId string, req request.CreateMeetupRequest) (*respond.MeetupRespond, error) {
	if !req.ScheduledFor.After(time.Now()) {
		return nil, errorx.New(errorx.CodeInvalidParam, "预约时间必须晚于当前时间")
	}
	if err := e.checkCircleOwnership(creatorId, req.CircleIds); err != nil {
		return nil, err
	}

	meetup := &model.Meetup{
		Uuid:         "M" + random.GetNowAndLenRandomString(13),
		CreatorId:    creatorId,
		Title:        req.Title,
		Description:  req.Description,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Address:      req.Address,
		ScheduledFor: req.ScheduledFor,
	}

	if err := e.repos.Meetup.Create(meetup); err != nil {
		zap.L().Error("create meetup error", zap.Error(err), zap.String("creator_id", creatorId))
		return nil, errorx.ErrServerBusy
	}
	if err := e.repos.EventShare.CreateBatch(buildShares(meetup.Uuid, event_kind_enum.MEETUP, req.CircleIds)); err != nil {
		zap.L().Warn("create meetup: share write error", zap.Error(err), zap.String("meetup_id", meetup.Uuid))
	}

	publishShared(meetup.Uuid, event_kind_enum.MEETUP, creatorId, req.CircleIds)

	return &respond.MeetupRespond{
		MeetupId:     meetup.Uuid,
		Title:        meetup.Title,
		Description:  meetup.Description,
		Latitude:     meetup.Latitude,
		Longitude:    meetup.Longitude,
		Address:      meetup.Address,
		ScheduledFor: meetup.ScheduledFor,
		CreatedAt:    meetup.CreatedAt,
	}, nil
}

// RescheduleMeetup Meetup 改期
// 新时间同样必须严格晚于当前时间；已过期的 Meetup 也允许改期"复活"
func (e *eventService) RescheduleMeetup(creatorId string, req request.RescheduleMeetupRequest) error {
	if !req.ScheduledFor.After(time.Now()) {
		return errorx.New(errorx.CodeInvalidParam, "预约时间必须晚于当前时间")
	}
	meetup, err := e.repos.Meetup.FindByUuid(req.MeetupId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.ErrEventNotFound
		}
		zap.L().Error("reschedule meetup: find error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if meetup.CreatorId != creatorId {
		return e.rejectForeignMutation(creatorId, req.MeetupId, event_kind_enum.MEETUP, "只有创建者可以改期")
	}
	meetup.ScheduledFor = req.ScheduledFor
	if err := e.repos.Meetup.Update(meetup); err != nil {
		zap.L().Error("reschedule meetup: update error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeleteMeetup 硬删除 Meetup，连带共享关系和 RSVP
func (e *eventService) DeleteMeetup(creatorId, meetupId string) error {
	meetup, err := e.repos.Meetup.FindByUuid(meetupId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.ErrEventNotFound
		}
		zap.L().Error("delete meetup: find error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if meetup.CreatorId != creatorId {
		return e.rejectForeignMutation(creatorId, meetupId, event_kind_enum.MEETUP, "只有创建者可以删除")
	}
	err = e.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Meetup.Delete(meetupId); err != nil {
			return err
		}
		if err := tx.EventShare.DeleteByEvent(meetupId, event_kind_enum.MEETUP); err != nil {
			return err
		}
		return tx.Rsvp.DeleteByEvent(meetupId, event_kind_enum.MEETUP)
	})
	if err != nil {
		zap.L().Error("delete meetup error", zap.Error(err), zap.String("meetup_id", meetupId))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetEvent 按 ID 查看单个事件
// 经过可见性判定后带出共享圈子、创建者摘要和出席聚合。
// 过了预约时间的 Meetup 不再进信息流，但这里仍可查看（回看历史）。
func (e *eventService) GetEvent(viewerId, eventId string, eventKind int8) (*respond.FeedItemRespond, error) {
	if !event_kind_enum.Valid(eventKind) {
		return nil, errorx.ErrInvalidParam
	}
	if err := e.access.CheckEventAccess(viewerId, eventId, eventKind); err != nil {
		return nil, err
	}

	item := &respond.FeedItemRespond{Kind: eventKind}
	var creatorId string
	switch eventKind {
	case event_kind_enum.PIN:
		pin, err := e.repos.Pin.FindByUuid(eventId)
		if err != nil {
			return nil, errorx.ErrEventNotFound
		}
		creatorId = pin.CreatorId
		item.Pin = &respond.PinRespond{
			PinId:     pin.Uuid,
			Title:     pin.Title,
			Note:      pin.Note,
			Emoji:     pin.Emoji,
			Latitude:  pin.Latitude,
			Longitude: pin.Longitude,
			Address:   pin.Address,
			IsActive:  pin.IsActive,
			CreatedAt: pin.CreatedAt,
			ExpiresAt: pin.ExpiresAt,
		}
	case event_kind_enum.MEETUP:
		meetup, err := e.repos.Meetup.FindByUuid(eventId)
		if err != nil {
			return nil, errorx.ErrEventNotFound
		}
		creatorId = meetup.CreatorId
		item.Meetup = &respond.MeetupRespond{
			MeetupId:     meetup.Uuid,
			Title:        meetup.Title,
			Description:  meetup.Description,
			Latitude:     meetup.Latitude,
			Longitude:    meetup.Longitude,
			Address:      meetup.Address,
			ScheduledFor: meetup.ScheduledFor,
			CreatedAt:    meetup.CreatedAt,
		}
	}

	if err := e.annotate(item, eventId, eventKind, creatorId, viewerId); err != nil {
		return nil, err
	}
	return item, nil
}

// GetMyEvents 列出自己创建的事件
// Pin 只列存活的（过期的 Pin 对任何人都不可见，包括创建者）；Meetup 全部列出
func (e *eventService) GetMyEvents(creatorId string) ([]respond.FeedItemRespond, error) {
	now := time.Now()
	items := make([]respond.FeedItemRespond, 0)

	pins, err := e.repos.Pin.FindByCreatorId(creatorId)
	if err != nil {
		zap.L().Error("get my events: find pins error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	for i := range pins {
		pin := &pins[i]
		if !pin.Live(now) {
			continue
		}
		item := respond.FeedItemRespond{
			Kind: event_kind_enum.PIN,
			Pin: &respond.PinRespond{
				PinId:     pin.Uuid,
				Title:     pin.Title,
				Note:      pin.Note,
				Emoji:     pin.Emoji,
				Latitude:  pin.Latitude,
				Longitude: pin.Longitude,
				Address:   pin.Address,
				IsActive:  pin.IsActive,
				CreatedAt: pin.CreatedAt,
				ExpiresAt: pin.ExpiresAt,
			},
		}
		if err := e.annotate(&item, pin.Uuid, event_kind_enum.PIN, creatorId, creatorId); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	meetups, err := e.repos.Meetup.FindByCreatorId(creatorId)
	if err != nil {
		zap.L().Error("get my events: find meetups error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	for i := range meetups {
		meetup := &meetups[i]
		item := respond.FeedItemRespond{
			Kind: event_kind_enum.MEETUP,
			Meetup: &respond.MeetupRespond{
				MeetupId:     meetup.Uuid,
				Title:        meetup.Title,
				Description:  meetup.Description,
				Latitude:     meetup.Latitude,
				Longitude:    meetup.Longitude,
				Address:      meetup.Address,
				ScheduledFor: meetup.ScheduledFor,
				CreatedAt:    meetup.CreatedAt,
			},
		}
		if err := e.annotate(&item, meetup.Uuid, event_kind_enum.MEETUP, creatorId, creatorId); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// annotate 补全共享圈子、创建者摘要和出席聚合
func (e *eventService) annotate(item *respond.FeedItemRespond, eventId string, eventKind int8, creatorId, viewerId string) error {
	circleIds, err := e.repos.EventShare.FindCircleIdsByEvent(eventId, eventKind)
	if err != nil {
		zap.L().Error("annotate event: find shares error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	item.SharedCircleIds = circleIds

	creator, err := e.repos.User.FindByUuid(creatorId)
	if err != nil {
		zap.L().Error("annotate event: find creator error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	item.Creator = respond.UserSummaryRespond{
		UserId:   creator.Uuid,
		Nickname: creator.Nickname,
		Handle:   creator.Handle,
		Avatar:   creator.Avatar,
	}

	attendance, err := e.rsvp.Aggregate(eventId, eventKind, viewerId)
	if err != nil {
		return err
	}
	item.Attendees = attendance.Attendees
	item.AttendeeCount = attendance.AttendeeCount
	item.ViewerResponse = attendance.ViewerResponse
	return nil
}

// buildShares 构造共享关系行
func buildShares(eventId string, eventKind int8, circleIds []string) []model.EventCircleShare {
	shares := make([]model.EventCircleShare, 0, len(circleIds))
	for _, circleId := range circleIds {
		shares = append(shares, model.EventCircleShare{
			EventId:   eventId,
			EventKind: eventKind,
			CircleId:  circleId,
		})
	}
	return shares
}
