// Package contact 实现联系人业务逻辑
// 联系人是 Owner 的单向记录：不需要对方同意，也不会自动互为联系人。
// LinkedUserId 指向注册用户时，这条记录就成了对方可见性判定的入口。
package contact

import (
	"strings"

	"go.uber.org/zap"

	"huddle_server/internal/dao/mysql/repository"
	"huddle_server/internal/dto/request"
	"huddle_server/internal/dto/respond"
	"huddle_server/internal/model"
	"huddle_server/pkg/errorx"
	"huddle_server/pkg/util/random"
)

type contactService struct {
	repos *repository.Repositories
}

// NewContactService 构造函数
func NewContactService(repos *repository.Repositories) *contactService {
	return &contactService{repos: repos}
}

// findOwnedContact 取出联系人并校验归属
func (s *contactService) findOwnedContact(ownerId, contactId string) (*model.Contact, error) {
	contact, err := s.repos.Contact.FindByUuid(contactId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
		}
		zap.L().Error("find contact error", zap.Error(err), zap.String("contact_id", contactId))
		return nil, errorx.ErrServerBusy
	}
	if contact.OwnerId != ownerId {
		return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
	}
	return contact, nil
}

// resolveHandle 按柄查找注册用户，柄先归一化为小写
// 找不到返回 (nil, nil)，由调用方决定是错误还是跳过关联
func (s *contactService) resolveHandle(handle string) (*model.UserInfo, error) {
	normalized := strings.ToLower(strings.TrimSpace(handle))
	if normalized == "" {
		return nil, nil
	}
	user, err := s.repos.User.FindByHandle(normalized)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, nil
		}
		zap.L().Error("resolve handle error", zap.Error(err), zap.String("handle", normalized))
		return nil, errorx.ErrServerBusy
	}
	return user, nil
}

// CreateContact 创建联系人
// Handle 可选：填了且对应注册用户时自动建立关联；对应不上也照常创建（纯通讯录条目）
func (s *contactService) CreateContact(ownerId string, req request.CreateContactRequest) (*respond.ContactRespond, error) {
	contact := &model.Contact{
		Uuid:        "T" + random.GetNowAndLenRandomString(13),
		OwnerId:     ownerId,
		DisplayName: req.DisplayName,
		Handle:      strings.ToLower(strings.TrimSpace(req.Handle)),
	}
	if req.Handle != "" {
		user, err := s.resolveHandle(req.Handle)
		if err != nil {
			return nil, err
		}
		if user != nil {
			if user.Uuid == ownerId {
				return nil, errorx.New(errorx.CodeInvalidParam, "不能把自己加为联系人")
			}
			contact.LinkedUserId = user.Uuid
		}
	}
	if err := s.repos.Contact.Create(contact); err != nil {
		zap.L().Error("create contact error", zap.Error(err), zap.String("owner_id", ownerId))
		return nil, errorx.ErrServerBusy
	}
	return &respond.ContactRespond{
		ContactId:    contact.Uuid,
		DisplayName:  contact.DisplayName,
		Handle:       contact.Handle,
		LinkedUserId: contact.LinkedUserId,
	}, nil
}

// GetContactList 获取联系人列表
func (s *contactService) GetContactList(ownerId string) ([]respond.ContactRespond, error) {
	contacts, err := s.repos.Contact.FindByOwnerId(ownerId)
	if err != nil {
		zap.L().Error("get contact list error", zap.Error(err), zap.String("owner_id", ownerId))
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.ContactRespond, 0, len(contacts))
	for _, c := range contacts {
		rsp = append(rsp, respond.ContactRespond{
			ContactId:    c.Uuid,
			DisplayName:  c.DisplayName,
			Handle:       c.Handle,
			LinkedUserId: c.LinkedUserId,
		})
	}
	return rsp, nil
}

// UpdateContact 更新联系人显示名称
func (s *contactService) UpdateContact(ownerId string, req request.UpdateContactRequest) error {
	contact, err := s.findOwnedContact(ownerId, req.ContactId)
	if err != nil {
		return err
	}
	contact.DisplayName = req.DisplayName
	if err := s.repos.Contact.Update(contact); err != nil {
		zap.L().Error("update contact error", zap.Error(err), zap.String("contact_id", req.ContactId))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeleteContact 删除联系人
// 连带删掉圈子关联：对方经由这些圈子获得的可见性随之消失
func (s *contactService) DeleteContact(ownerId, contactId string) error {
	if _, err := s.findOwnedContact(ownerId, contactId); err != nil {
		return err
	}
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Contact.SoftDelete(contactId); err != nil {
			return err
		}
		return tx.CircleMember.DeleteByContactId(contactId)
	})
	if err != nil {
		zap.L().Error("delete contact error", zap.Error(err), zap.String("contact_id", contactId))
		return errorx.ErrServerBusy
	}
	return nil
}

// LinkContact 把联系人关联到注册用户的柄
// 关联生效后，对方的可达圈子立刻包含这个联系人所在的圈子
func (s *contactService) LinkContact(ownerId string, req request.LinkContactRequest) error {
	contact, err := s.findOwnedContact(ownerId, req.ContactId)
	if err != nil {
		return err
	}
	user, err := s.resolveHandle(req.Handle)
	if err != nil {
		return err
	}
	if user == nil {
		return errorx.New(errorx.CodeUserNotExist, "该用户名柄没有对应的注册用户")
	}
	if user.Uuid == ownerId {
		return errorx.New(errorx.CodeInvalidParam, "不能把自己加为联系人")
	}
	contact.Handle = user.Handle
	contact.LinkedUserId = user.Uuid
	if err := s.repos.Contact.Update(contact); err != nil {
		zap.L().Error("link contact error", zap.Error(err), zap.String("contact_id", req.ContactId))
		return errorx.ErrServerBusy
	}
	return nil
}

// UnlinkContact 解除联系人与注册用户的关联
// 解除后对方失去经由这条记录获得的可见性，联系人本身保留
func (s *contactService) UnlinkContact(ownerId, contactId string) error {
	contact, err := s.findOwnedContact(ownerId, contactId)
	if err != nil {
		return err
	}
	contact.Handle = ""
	contact.LinkedUserId = ""
	if err := s.repos.Contact.Update(contact); err != nil {
		zap.L().Error("unlink contact error", zap.Error(err), zap.String("contact_id", contactId))
		return errorx.ErrServerBusy
	}
	return nil
}
