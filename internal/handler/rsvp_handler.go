// Package handler 提供 HTTP 请求处理器
// 本文件处理 RSVP 相关的 API 请求
package handler

import (
	"huddle_server/internal/dto/request"
	"huddle_server/internal/infrastructure/middleware"
	"huddle_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RsvpHandler RSVP 请求处理器
type RsvpHandler struct {
	rsvpSvc   service.RsvpService
	accessSvc service.AccessService
}

// NewRsvpHandler 创建 RSVP 处理器实例
func NewRsvpHandler(rsvpSvc service.RsvpService, accessSvc service.AccessService) *RsvpHandler {
	return &RsvpHandler{rsvpSvc: rsvpSvc, accessSvc: accessSvc}
}

// SubmitRsvp 提交/修改出席表态
// POST /rsvp/submitRsvp
func (h *RsvpHandler) SubmitRsvp(c *gin.Context) {
	userId := c.GetString(middleware.CtxUserIdKey)
	var req request.SubmitRsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.rsvpSvc.Submit(userId, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetAttendance 查看事件的出席聚合
// GET /rsvp/getAttendance?event_id=xxx&event_kind=1
// 读出席聚合同样要求事件对 viewer 可见
func (h *RsvpHandler) GetAttendance(c *gin.Context) {
	viewerId := c.GetString(middleware.CtxUserIdKey)
	var req request.GetEventRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.accessSvc.CheckEventAccess(viewerId, req.EventId, req.EventKind); err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.rsvpSvc.Aggregate(req.EventId, req.EventKind, viewerId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
