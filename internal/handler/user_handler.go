// Package handler 提供 HTTP 请求处理器
// 本文件处理用户资料相关的 API 请求
package handler

import (
	"huddle_server/internal/dto/request"
	"huddle_server/internal/infrastructure/middleware"
	"huddle_server/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetUserInfo 获取个人资料
// GET /user/getUserInfo
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	userId := c.GetString(middleware.CtxUserIdKey)
	data, err := h.userSvc.GetUserInfo(userId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateUserInfo 更新个人资料
// POST /user/updateUserInfo
func (h *UserHandler) UpdateUserInfo(c *gin.Context) {
	userId := c.GetString(middleware.CtxUserIdKey)
	var req request.UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.UpdateUserInfo(userId, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ResolveHandle 按用户名柄查找用户摘要
// GET /user/resolveHandle?handle=xxx
func (h *UserHandler) ResolveHandle(c *gin.Context) {
	handle := c.Query("handle")
	data, err := h.userSvc.ResolveHandle(handle)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUserSummary 按 UUID 获取用户摘要
// GET /user/getUserSummary?uuid=xxx
func (h *UserHandler) GetUserSummary(c *gin.Context) {
	uuid := c.Query("uuid")
	data, err := h.userSvc.GetUserSummary(uuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
