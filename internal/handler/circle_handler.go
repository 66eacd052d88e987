// Package handler 提供 HTTP 请求处理器
// 本文件处理圈子相关的 API 请求
package handler

import (
	"huddle_server/internal/dto/request"
	"huddle_server/internal/infrastructure/middleware"
	"huddle_server/internal/service"

	"github.com/gin-gonic/gin"
)

// CircleHandler 圈子请求处理器
type CircleHandler struct {
	circleSvc service.CircleService
}

// NewCircleHandler 创建圈子处理器实例
func NewCircleHandler(circleSvc service.CircleService) *CircleHandler {
	return &CircleHandler{circleSvc: circleSvc}
}

// CreateCircle 创建圈子
// POST /circle/createCircle
func (h *CircleHandler) CreateCircle(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.CreateCircleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.circleSvc.CreateCircle(ownerId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetCircleList 获取圈子列表
// GET /circle/getCircleList
func (h *CircleHandler) GetCircleList(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	data, err := h.circleSvc.GetCircleList(ownerId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetCircleDetail 获取圈子详情
// GET /circle/getCircleDetail?circle_id=xxx
func (h *CircleHandler) GetCircleDetail(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	circleId := c.Query("circle_id")
	data, err := h.circleSvc.GetCircleDetail(ownerId, circleId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateCircle 圈子改名/换表情
// POST /circle/updateCircle
func (h *CircleHandler) UpdateCircle(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.UpdateCircleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.circleSvc.UpdateCircle(ownerId, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteCircle 删除圈子
// POST /circle/deleteCircle
func (h *CircleHandler) DeleteCircle(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.DeleteCircleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.circleSvc.DeleteCircle(ownerId, req.CircleId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// AddCircleMember 添加圈子成员
// POST /circle/addCircleMember
func (h *CircleHandler) AddCircleMember(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.CircleMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.circleSvc.AddCircleMember(ownerId, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RemoveCircleMember 移除圈子成员
// POST /circle/removeCircleMember
func (h *CircleHandler) RemoveCircleMember(c *gin.Context) {
	ownerId := c.GetString(middleware.CtxUserIdKey)
	var req request.CircleMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.circleSvc.RemoveCircleMember(ownerId, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
