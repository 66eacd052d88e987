package router

import (
	"huddle_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerFeedRoutes 注册信息流相关路由
func (rt *Router) registerFeedRoutes(r *gin.Engine) {
	h := rt.handlers.Feed

	feedGroup := r.Group("/feed")
	feedGroup.Use(middleware.JWTAuth())
	{
		feedGroup.GET("/getFeed", h.GetFeed)
	}
}
