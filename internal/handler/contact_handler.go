// Package handler 提供 HTTP 请求处理器
// 本文件处理联系人相关的 API 请求
package handler

import (
	"huddle_server/internal/dto/request"
	"huddle_server/internal/infrastructure/middleware"
	"huddle_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler 联系人请求处理器
type ContactHandler struct {
	contactSvc service.ContactService
}

// NewContactHandler 创建联系人处理器实例
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// CreateContact 创建联系人
// POST /contact/createContact
func (h *ContactHandler) CreateContact(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.contactSvc.CreateContact(ownerId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetContactList 获取联系人列表
// GET /contact/getContactList
func (h *ContactHandler) GetContactList(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	data, err := h.contactSvc.GetContactList(ownerId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateContact 更新联系人显示名称
// POST /contact/updateContact
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contactSvc.UpdateContact(ownerId, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteContact 删除联系人
// POST /contact/deleteContact
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.DeleteContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contactSvc.DeleteContact(ownerId, req.ContactId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// LinkContact 把联系人关联到注册用户
// POST /contact/linkContact
func (h *ContactHandler) LinkContact(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.LinkContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contactSvc.LinkContact(ownerId, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UnlinkContact 解除联系人与注册用户的关联
// POST /contact/unlinkContact
func (h *ContactHandler) UnlinkContact(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.DeleteContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contactSvc.UnlinkContact(ownerId, req.ContactId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
