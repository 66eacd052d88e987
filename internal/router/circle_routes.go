package router

import (
	"huddle_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerCircleRoutes 注册圈子相关路由
func (rt *Router) registerCircleRoutes(r *gin.Engine) {
	h := rt.handlers.Circle

	circleGroup := r.Group("/circle")
	circleGroup.Use(middleware.JWTAuth())
	{
		circleGroup.POST("/createCircle", h.CreateCircle)
		circleGroup.GET("/getCircleList", h.GetCircleList)
		circleGroup.GET("/getCircleDetail", h.GetCircleDetail)
		circleGroup.POST("/updateCircle", h.UpdateCircle)
		circleGroup.POST("/deleteCircle", h.DeleteCircle)
		circleGroup.POST("/addCircleMember", h.AddCircleMember)
		circleGroup.POST("/removeCircleMember", h.RemoveCircleMember)
	}
}
