// Package handler 提供 HTTP 请求处理器
// 本文件处理认证相关的 API 请求
package handler

import (
	"huddle_server/internal/dto/request"
	"huddle_server/internal/infrastructure/middleware"
	"huddle_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证请求处理器
// 通过构造函数注入 AuthService，遵循依赖倒置原则
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建认证处理器实例
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// SendSmsCode 发送短信验证码
// POST /auth/sendSmsCode
func (h *AuthHandler) SendSmsCode(c *gin.Context) {
	var req request.SendSmsCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.authSvc.SendSmsCode(req.Telephone); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Register 用户注册
// POST /auth/register
// 响应: respond.RegisterRespond (用户信息 + JWT Token)
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authSvc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login 密码登录
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SmsLogin 短信验证码登录
// POST /auth/smsLogin
func (h *AuthHandler) SmsLogin(c *gin.Context) {
	var req request.SmsLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authSvc.SmsLogin(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RefreshToken 刷新 Access Token
// POST /auth/refreshToken
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authSvc.RefreshToken(req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Logout 登出
// POST /auth/logout (需要认证)
func (h *AuthHandler) Logout(c *gin.Context) {
	userId := c.GetString(middleware.CtxUserIdKey)
	if err := h.authSvc.Logout(userId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
