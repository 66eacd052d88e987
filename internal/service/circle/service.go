// Package circle 实现圈子业务逻辑
// 圈子是共享的最小单位，所有操作都要求操作者是圈主本人。
// 圈子成员关联的是圈主自己的联系人，不是注册用户。
package circle

import (
	"go.uber.org/zap"

	"huddle_server/internal/dao/mysql/repository"
	"huddle_server/internal/dto/request"
	"huddle_server/internal/dto/respond"
	"huddle_server/internal/model"
	"huddle_server/pkg/errorx"
	"huddle_server/pkg/util/random"
)

type circleService struct {
	repos *repository.Repositories
}

// NewCircleService 构造函数
func NewCircleService(repos *repository.Repositories) *circleService {
	return &circleService{repos: repos}
}

// findOwnedCircle 取出圈子并校验归属
// 不存在和不属于操作者都返回"圈子不存在"，不向非圈主确认圈子的存在
func (s *circleService) findOwnedCircle(ownerId, circleId string) (*model.Circle, error) {
	circle, err := s.repos.Circle.FindByUuid(circleId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "圈子不存在")
		}
		zap.L().Error("find circle error", zap.Error(err), zap.String("circle_id", circleId))
		return nil, errorx.ErrServerBusy
	}
	if circle.OwnerId != ownerId {
		return nil, errorx.New(errorx.CodeNotFound, "圈子不存在")
	}
	return circle, nil
}

// CreateCircle 创建圈子
func (s *circleService) CreateCircle(ownerId string, req request.CreateCircleRequest) (*respond.CircleRespond, error) {
	circle := &model.Circle{
		Uuid:    "C" + random.GetNowAndLenRandomString(13),
		OwnerId: ownerId,
		Name:    req.Name,
		Emoji:   req.Emoji,
	}
	if err := s.repos.Circle.Create(circle); err != nil {
		zap.L().Error("create circle error", zap.Error(err), zap.String("owner_id", ownerId))
		return nil, errorx.ErrServerBusy
	}
	return &respond.CircleRespond{
		CircleId:    circle.Uuid,
		Name:        circle.Name,
		Emoji:       circle.Emoji,
		MemberCount: 0,
	}, nil
}

// GetCircleList 获取自己拥有的圈子列表（含成员数）
func (s *circleService) GetCircleList(ownerId string) ([]respond.CircleRespond, error) {
	circles, err := s.repos.Circle.FindByOwnerId(ownerId)
	if err != nil {
		zap.L().Error("get circle list error", zap.Error(err), zap.String("owner_id", ownerId))
		return nil, errorx.ErrServerBusy
	}

	circleIds := make([]string, 0, len(circles))
	for _, c := range circles {
		circleIds = append(circleIds, c.Uuid)
	}
	counts, err := s.repos.CircleMember.CountByCircleIds(circleIds)
	if err != nil {
		zap.L().Error("get circle list: count members error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.CircleRespond, 0, len(circles))
	for _, c := range circles {
		rsp = append(rsp, respond.CircleRespond{
			CircleId:    c.Uuid,
			Name:        c.Name,
			Emoji:       c.Emoji,
			MemberCount: counts[c.Uuid],
		})
	}
	return rsp, nil
}

// GetCircleDetail 获取圈子详情（含成员列表）
func (s *circleService) GetCircleDetail(ownerId, circleId string) (*respond.CircleDetailRespond, error) {
	circle, err := s.findOwnedCircle(ownerId, circleId)
	if err != nil {
		return nil, err
	}

	members, err := s.repos.CircleMember.FindByCircleId(circleId)
	if err != nil {
		zap.L().Error("get circle detail: find members error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := &respond.CircleDetailRespond{
		CircleId: circle.Uuid,
		Name:     circle.Name,
		Emoji:    circle.Emoji,
		Members:  []respond.CircleMemberRespond{},
	}
	for _, m := range members {
		contact, err := s.repos.Contact.FindByUuid(m.ContactId)
		if err != nil {
			// 软删除的联系人留在关联表里也不影响详情展示
			if errorx.IsNotFound(err) {
				continue
			}
			zap.L().Error("get circle detail: find contact error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		rsp.Members = append(rsp.Members, respond.CircleMemberRespond{
			ContactId:    contact.Uuid,
			DisplayName:  contact.DisplayName,
			LinkedUserId: contact.LinkedUserId,
		})
	}
	return rsp, nil
}

// UpdateCircle 圈子改名/换表情
func (s *circleService) UpdateCircle(ownerId string, req request.UpdateCircleRequest) error {
	circle, err := s.findOwnedCircle(ownerId, req.CircleId)
	if err != nil {
		return err
	}
	circle.Name = req.Name
	circle.Emoji = req.Emoji
	if err := s.repos.Circle.Update(circle); err != nil {
		zap.L().Error("update circle error", zap.Error(err), zap.String("circle_id", req.CircleId))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeleteCircle 删除圈子
// 连带删掉成员关联和既有事件的共享关系：指向已删圈子的共享行失效后，
// 只通过这个圈子可见的事件就不再可见
func (s *circleService) DeleteCircle(ownerId, circleId string) error {
	if _, err := s.findOwnedCircle(ownerId, circleId); err != nil {
		return err
	}
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Circle.SoftDelete(circleId); err != nil {
			return err
		}
		if err := tx.CircleMember.DeleteByCircleId(circleId); err != nil {
			return err
		}
		return tx.EventShare.DeleteByCircleId(circleId)
	})
	if err != nil {
		zap.L().Error("delete circle error", zap.Error(err), zap.String("circle_id", circleId))
		return errorx.ErrServerBusy
	}
	return nil
}

// AddCircleMember 添加圈子成员
// 联系人必须存在且属于圈主本人；重复添加幂等
func (s *circleService) AddCircleMember(ownerId string, req request.CircleMemberRequest) error {
	if _, err := s.findOwnedCircle(ownerId, req.CircleId); err != nil {
		return err
	}
	contact, err := s.repos.Contact.FindByUuid(req.ContactId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "联系人不存在")
		}
		zap.L().Error("add circle member: find contact error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if contact.OwnerId != ownerId {
		return errorx.New(errorx.CodeNotFound, "联系人不存在")
	}

	member := &model.CircleMember{
		CircleId:  req.CircleId,
		ContactId: req.ContactId,
	}
	if err := s.repos.CircleMember.Create(member); err != nil {
		zap.L().Error("add circle member error", zap.Error(err),
			zap.String("circle_id", req.CircleId), zap.String("contact_id", req.ContactId))
		return errorx.ErrServerBusy
	}
	return nil
}

// RemoveCircleMember 移除圈子成员，幂等
func (s *circleService) RemoveCircleMember(ownerId string, req request.CircleMemberRequest) error {
	if _, err := s.findOwnedCircle(ownerId, req.CircleId); err != nil {
		return err
	}
	if err := s.repos.CircleMember.Delete(req.CircleId, req.ContactId); err != nil {
		zap.L().Error("remove circle member error", zap.Error(err),
			zap.String("circle_id", req.CircleId), zap.String("contact_id", req.ContactId))
		return errorx.ErrServerBusy
	}
	return nil
}
