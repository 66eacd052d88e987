// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"huddle_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器，持有 Handler 聚合
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
// handlers: Handler 层聚合实例
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用，按模块分别注册各个路由组
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.registerAuthRoutes(r)    // 认证路由
	rt.registerUserRoutes(r)    // 用户路由
	rt.registerContactRoutes(r) // 联系人路由
	rt.registerCircleRoutes(r)  // 圈子路由
	rt.registerEventRoutes(r)   // 事件路由
	rt.registerFeedRoutes(r)    // 信息流路由
	rt.registerRsvpRoutes(r)    // RSVP 路由
}
