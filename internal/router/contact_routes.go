package router

import (
	"huddle_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerContactRoutes 注册联系人相关路由
func (rt *Router) registerContactRoutes(r *gin.Engine) {
	h := rt.handlers.Contact

	contactGroup := r.Group("/contact")
	contactGroup.Use(middleware.JWTAuth())
	{
		contactGroup.POST("/createContact", h.CreateContact)
		contactGroup.GET("/getContactList", h.GetContactList)
		contactGroup.POST("/updateContact", h.UpdateContact)
		contactGroup.POST("/deleteContact", h.DeleteContact)
		contactGroup.POST("/linkContact", h.LinkContact)
		contactGroup.POST("/unlinkContact", h.UnlinkContact)
	}
}
