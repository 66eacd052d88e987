// Package access 实现事件可见性判定
// 一次判定分两步：先解析 viewer 的"可达圈子"集合，再与事件的共享圈子集合求交。
// 可达圈子 = 别人联系人簿里指向 viewer 的记录所在的圈子 ∪ viewer 自己拥有的圈子。
// 创建者对自己的事件恒可见，不走集合相交。
package access

import (
	"time"

	"go.uber.org/zap"

	"huddle_server/internal/dao/mysql/repository"
	"huddle_server/pkg/enum/event/event_kind_enum"
	"huddle_server/pkg/errorx"
)

type accessService struct {
	repos *repository.Repositories
}

// NewAccessService 构造函数
func NewAccessService(repos *repository.Repositories) *accessService {
	return &accessService{repos: repos}
}

// ResolveViewerCircles 计算 viewer 的可达圈子集合
// 每个请求只调用一次，之后的逐事件判定都是内存集合运算
func (a *accessService) ResolveViewerCircles(viewerId string) (map[string]bool, error) {
	circles := make(map[string]bool)

	// 第一步：反向联系人查找——全库中 linked_user_id 指向 viewer 的联系人记录
	contacts, err := a.repos.Contact.FindByLinkedUserId(viewerId)
	if err != nil {
		zap.L().Error("resolve viewer circles: find linked contacts error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 第二步：这些联系人被放进的圈子
	if len(contacts) > 0 {
		contactIds := make([]string, 0, len(contacts))
		for _, c := range contacts {
			contactIds = append(contactIds, c.Uuid)
		}
		circleIds, err := a.repos.CircleMember.FindCircleIdsByContactIds(contactIds)
		if err != nil {
			zap.L().Error("resolve viewer circles: find circle ids error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		for _, id := range circleIds {
			circles[id] = true
		}
	}

	// 第三步：并上 viewer 自己拥有的圈子
	// 创建者短路已经保证自己的事件恒可见，这一步让"把事件共享到自己圈子"
	// 的边界情况在集合层面也自洽
	ownIds, err := a.repos.Circle.FindUuidsByOwnerId(viewerId)
	if err != nil {
		zap.L().Error("resolve viewer circles: find own circles error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	for _, id := range ownIds {
		circles[id] = true
	}

	return circles, nil
}

// CanAccess 纯判定，不触库
// 信息流路径对每个候选事件调用一次
func (a *accessService) CanAccess(viewerId, creatorId string, sharedCircleIds []string, viewerCircles map[string]bool) bool {
	if viewerId == creatorId {
		return true
	}
	for _, circleId := range sharedCircleIds {
		if viewerCircles[circleId] {
			return true
		}
	}
	return false
}

// CheckEventAccess 对单个事件做完整判定
// 不存在、已失效（Pin 过期/取消）、存在但未共享给 viewer：对外全部是 ErrEventNotFound。
// 区分这三种情况会向无权限的用户泄露事件的存在性。
func (a *accessService) CheckEventAccess(viewerId, eventId string, eventKind int8) error {
	var creatorId string
	switch eventKind {
	case event_kind_enum.PIN:
		pin, err := a.repos.Pin.FindByUuid(eventId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.ErrEventNotFound
			}
			zap.L().Error("check event access: find pin error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if !pin.Live(time.Now()) {
			return errorx.ErrEventNotFound
		}
		creatorId = pin.CreatorId
	case event_kind_enum.MEETUP:
		meetup, err := a.repos.Meetup.FindByUuid(eventId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.ErrEventNotFound
			}
			zap.L().Error("check event access: find meetup error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		creatorId = meetup.CreatorId
	default:
		return errorx.ErrInvalidParam
	}

	if viewerId == creatorId {
		return nil
	}

	sharedCircleIds, err := a.repos.EventShare.FindCircleIdsByEvent(eventId, eventKind)
	if err != nil {
		zap.L().Error("check event access: find shares error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	viewerCircles, err := a.ResolveViewerCircles(viewerId)
	if err != nil {
		return err
	}
	if !a.CanAccess(viewerId, creatorId, sharedCircleIds, viewerCircles) {
		return errorx.ErrEventNotFound
	}
	return nil
}
