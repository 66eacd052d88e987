package router

import (
	"huddle_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerRsvpRoutes 注册 RSVP 相关路由
func (rt *Router) registerRsvpRoutes(r *gin.Engine) {
	h := rt.handlers.Rsvp

	rsvpGroup := r.Group("/rsvp")
	rsvpGroup.Use(middleware.JWTAuth())
	{
		rsvpGroup.POST("/submitRsvp", h.SubmitRsvp)
		rsvpGroup.GET("/getAttendance", h.GetAttendance)
	}
}
