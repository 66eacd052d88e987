package router

import (
	"huddle_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerAuthRoutes 注册认证相关路由
func (rt *Router) registerAuthRoutes(r *gin.Engine) {
	h := rt.handlers.Auth

	// 公开接口 (无需认证)
	r.POST("/auth/sendSmsCode", h.SendSmsCode)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/smsLogin", h.SmsLogin)
	r.POST("/auth/refreshToken", h.RefreshToken)

	// 需要认证的接口
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.JWTAuth())
	{
		authGroup.POST("/logout", h.Logout)
	}
}
