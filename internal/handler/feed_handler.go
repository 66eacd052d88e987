// Package handler 提供 HTTP 请求处理器
// 本文件处理信息流相关的 API 请求
package handler

import (
	"time"

	"huddle_server/internal/infrastructure/middleware"
	"huddle_server/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedHandler 信息流请求处理器
type FeedHandler struct {
	feedSvc service.FeedService
}

// NewFeedHandler 创建信息流处理器实例
func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

// GetFeed 获取当前用户的信息流
// GET /feed/getFeed
// 同一次请求内的所有过期/开始判断用同一个时刻
func (h *FeedHandler) GetFeed(c *gin.Context) {
	viewerId := c.GetString(middleware.CtxUserIdKey)
	data, err := h.feedSvc.BuildFeed(viewerId, time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
