// Package handler 提供 HTTP 请求处理器
// 本文件处理事件（Pin/Meetup）相关的 API 请求
package handler

import (
	"huddle_server/internal/dto/request"
	"huddle_server/internal/infrastructure/middleware"
	"huddle_server/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler 事件请求处理器
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler 创建事件处理器实例
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// CreatePin 创建 Pin
// POST /event/createPin
func (h *EventHandler) CreatePin(c *gin.Context) {
	creatorId := c.GetString(middleware.CtxUserIdKey)
	var req request.CreatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.eventSvc.CreatePin(creatorId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeactivatePin 提前取消 Pin
// POST /event/deactivatePin
func (h *EventHandler) DeactivatePin(c *gin.Context) {
	creatorId := c.GetString(middleware.CtxUserIdKey)
	var req request.DeactivatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.eventSvc.DeactivatePin(creatorId, req.PinId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CreateMeetup 创建 Meetup
// POST /event/createMeetup
func (h *EventHandler) CreateMeetup(c *gin.Context) {
	creatorId := c.GetString(middleware.CtxUserIdKey)
	var req request.CreateMeetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.eventSvc.CreateMeetup(creatorId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RescheduleMeetup Meetup 改期
// POST /event/rescheduleMeetup
func (h *EventHandler) RescheduleMeetup(c *gin.Context) {
	creatorId := c.GetString(middleware.CtxUserIdKey)
	var req request.RescheduleMeetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.eventSvc.RescheduleMeetup(creatorId, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteMeetup 删除 Meetup
// POST /event/deleteMeetup
func (h *EventHandler) DeleteMeetup(c *gin.Context) {
	creatorId := c.GetString(middleware.CtxUserIdKey)
	var req request.DeleteMeetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.eventSvc.DeleteMeetup(creatorId, req.MeetupId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetEvent 按 ID 查看单个事件
// GET /event/getEvent?event_id=xxx&event_kind=0
func (h *EventHandler) GetEvent(c *gin.Context) {
	viewerId := c.GetString(middleware.CtxUserIdKey)
	var req request.GetEventRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.eventSvc.GetEvent(viewerId, req.EventId, req.EventKind)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyEvents 列出自己创建的事件
// GET /event/getMyEvents
func (h *EventHandler) GetMyEvents(c *gin.Context) {
	creatorId := c.GetString(middleware.CtxUserIdKey)
	data, err := h.eventSvc.GetMyEvents(creatorId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
