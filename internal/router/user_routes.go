package router

import (
	"huddle_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerUserRoutes 注册用户相关路由
func (rt *Router) registerUserRoutes(r *gin.Engine) {
	h := rt.handlers.User

	userGroup := r.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	{
		userGroup.GET("/getUserInfo", h.GetUserInfo)
		userGroup.POST("/updateUserInfo", h.UpdateUserInfo)
		userGroup.GET("/resolveHandle", h.ResolveHandle)
		userGroup.GET("/getUserSummary", h.GetUserSummary)
	}
}
