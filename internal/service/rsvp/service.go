// Package rsvp 实现出席表态业务逻辑
package rsvp

import (
	"context"
	"time"

	"go.uber.org/zap"

	"huddle_server/internal/dao/mysql/repository"
	"huddle_server/internal/dto/request"
	"huddle_server/internal/dto/respond"
	"huddle_server/internal/infrastructure/mq"
	"huddle_server/internal/model"
	"huddle_server/pkg/enum/rsvp/rsvp_response_enum"
	"huddle_server/pkg/enum/signal/signal_kind_enum"
	"huddle_server/pkg/errorx"
	"huddle_server/pkg/util/snowflake"
)

// AccessChecker 写路径需要的可见性判定能力
// 在消费方定义最小接口，避免依赖整个 service 包
type AccessChecker interface {
	CheckEventAccess(viewerId, eventId string, eventKind int8) error
}

type rsvpService struct {
	repos  *repository.Repositories
	access AccessChecker
}

// NewRsvpService 构造函数
func NewRsvpService(repos *repository.Repositories, access AccessChecker) *rsvpService {
	return &rsvpService{repos: repos, access: access}
}

// Submit 提交/修改出席表态
// 写路径先过同一条可见性规则：看不见的事件不能表态，返回的还是"事件不存在"。
// 之后的写入是以 (user_id, event_id, event_kind) 为冲突键的 Upsert，
// 同一用户重复提交覆盖之前的表态，并发下由数据库唯一索引收敛成一行。
func (r *rsvpService) Submit(userId string, req request.SubmitRsvpRequest) error {
	if !rsvp_response_enum.Valid(req.Response) {
		return errorx.ErrInvalidParam
	}
	if err := r.access.CheckEventAccess(userId, req.EventId, req.EventKind); err != nil {
		return err
	}

	record := &model.Rsvp{
		UserId:    userId,
		EventId:   req.EventId,
		EventKind: req.EventKind,
		Response:  req.Response,
	}
	if err := r.repos.Rsvp.Upsert(record); err != nil {
		zap.L().Error("submit rsvp: upsert error", zap.Error(err),
			zap.String("user_id", userId), zap.String("event_id", req.EventId))
		return errorx.ErrServerBusy
	}

	// 通知侧信道，best-effort
	sig := mq.Signal{
		Id:        snowflake.GenerateIDString(),
		Kind:      signal_kind_enum.RSVP_SUBMITTED,
		EventId:   req.EventId,
		EventKind: req.EventKind,
		ActorId:   userId,
		Response:  req.Response,
		CreatedAt: time.Now(),
	}
	if err := mq.Publish(context.Background(), sig); err != nil {
		zap.L().Warn("submit rsvp: publish signal error", zap.Error(err))
	}
	return nil
}

// Aggregate 聚合一个事件的出席情况
// 出席者列表只包含明确表态"参加"的用户；"不参加"只体现在 viewer 自己的表态字段里。
// 调用方负责保证 viewer 对该事件可见。
func (r *rsvpService) Aggregate(eventId string, eventKind int8, viewerId string) (*respond.AttendanceRespond, error) {
	records, err := r.repos.Rsvp.FindByEvent(eventId, eventKind)
	if err != nil {
		zap.L().Error("aggregate rsvp: find by event error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := &respond.AttendanceRespond{
		Attendees: []respond.UserSummaryRespond{},
	}
	attendingIds := make([]string, 0, len(records))
	for _, record := range records {
		if record.Response == rsvp_response_enum.ATTENDING {
			attendingIds = append(attendingIds, record.UserId)
		}
		if record.UserId == viewerId {
			response := record.Response
			rsp.ViewerResponse = &response
		}
	}
	rsp.AttendeeCount = len(attendingIds)

	if len(attendingIds) > 0 {
		users, err := r.repos.User.FindByUuids(attendingIds)
		if err != nil {
			zap.L().Error("aggregate rsvp: batch find users error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		for _, user := range users {
			rsp.Attendees = append(rsp.Attendees, respond.UserSummaryRespond{
				UserId:   user.Uuid,
				Nickname: user.Nickname,
				Handle:   user.Handle,
				Avatar:   user.Avatar,
			})
		}
	}
	return rsp, nil
}
