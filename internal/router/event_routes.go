package router

import (
	"huddle_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerEventRoutes 注册事件相关路由
func (rt *Router) registerEventRoutes(r *gin.Engine) {
	h := rt.handlers.Event

	eventGroup := r.Group("/event")
	eventGroup.Use(middleware.JWTAuth())
	{
		eventGroup.POST("/createPin", h.CreatePin)
		eventGroup.POST("/deactivatePin", h.DeactivatePin)
		eventGroup.POST("/createMeetup", h.CreateMeetup)
		eventGroup.POST("/rescheduleMeetup", h.RescheduleMeetup)
		eventGroup.POST("/deleteMeetup", h.DeleteMeetup)
		eventGroup.GET("/getEvent", h.GetEvent)
		eventGroup.GET("/getMyEvents", h.GetMyEvents)
	}
}
