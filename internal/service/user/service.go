// Package user 实现用户资料业务逻辑
package user

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"huddle_server/internal/dao/mysql/repository"
	myredis "huddle_server/internal/dao/redis"
	"huddle_server/internal/dto/request"
	"huddle_server/internal/dto/respond"
	"huddle_server/pkg/constants"
	"huddle_server/pkg/errorx"
)

type userService struct {
	repos *repository.Repositories
	cache myredis.CacheService
}

// NewUserService 构造函数
func NewUserService(repos *repository.Repositories, cache myredis.CacheService) *userService {
	return &userService{repos: repos, cache: cache}
}

// summaryCacheKey 用户摘要缓存键
func summaryCacheKey(uuid string) string {
	return "user_summary:" + uuid
}

// GetUserInfo 获取个人资料
func (s *userService) GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error) {
	user, err := s.repos.User.FindByUuid(uuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error("get user info error", zap.Error(err), zap.String("uuid", uuid))
		return nil, errorx.ErrServerBusy
	}
	return &respond.GetUserInfoRespond{
		Uuid:      user.Uuid,
		Nickname:  user.Nickname,
		Handle:    user.Handle,
		Telephone: user.Telephone,
		Avatar:    user.Avatar,
	}, nil
}

// UpdateUserInfo 更新个人资料
// 只允许改昵称和头像，柄和手机号不可变；写库后作废摘要缓存
func (s *userService) UpdateUserInfo(uuid string, req request.UpdateUserInfoRequest) error {
	user, err := s.repos.User.FindByUuid(uuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error("update user info: find error", zap.Error(err), zap.String("uuid", uuid))
		return errorx.ErrServerBusy
	}
	if req.Nickname != "" {
		user.Nickname = req.Nickname
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if err := s.repos.User.Update(user); err != nil {
		zap.L().Error("update user info error", zap.Error(err), zap.String("uuid", uuid))
		return errorx.ErrServerBusy
	}
	if err := s.cache.Delete(context.Background(), summaryCacheKey(uuid)); err != nil {
		zap.L().Warn("update user info: invalidate cache error", zap.Error(err))
	}
	return nil
}

// ResolveHandle 按用户名柄查找用户摘要
// 走缓存：先查摘要缓存，未命中回源数据库并写回
func (s *userService) ResolveHandle(handle string) (*respond.UserSummaryRespond, error) {
	normalized := strings.ToLower(strings.TrimSpace(handle))
	if normalized == "" {
		return nil, errorx.ErrInvalidParam
	}
	user, err := s.repos.User.FindByHandle(normalized)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error("resolve handle error", zap.Error(err), zap.String("handle", normalized))
		return nil, errorx.ErrServerBusy
	}
	return s.summaryOf(user.Uuid, user.Nickname, user.Handle, user.Avatar), nil
}

// GetUserSummary 获取用户摘要（缓存优先）
func (s *userService) GetUserSummary(uuid string) (*respond.UserSummaryRespond, error) {
	ctx := context.Background()
	cached, err := s.cache.Get(ctx, summaryCacheKey(uuid))
	if err == nil && cached != "" {
		var summary respond.UserSummaryRespond
		if jsonErr := json.Unmarshal([]byte(cached), &summary); jsonErr == nil {
			return &summary, nil
		}
	}

	user, err := s.repos.User.FindByUuid(uuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error("get user summary error", zap.Error(err), zap.String("uuid", uuid))
		return nil, errorx.ErrServerBusy
	}
	summary := s.summaryOf(user.Uuid, user.Nickname, user.Handle, user.Avatar)

	if data, jsonErr := json.Marshal(summary); jsonErr == nil {
		ttl := time.Duration(constants.USER_CACHE_TTL_MINUTES) * time.Minute
		if cacheErr := s.cache.Set(ctx, summaryCacheKey(uuid), string(data), ttl); cacheErr != nil {
			zap.L().Warn("get user summary: write cache error", zap.Error(cacheErr))
		}
	}
	return summary, nil
}

func (s *userService) summaryOf(uuid, nickname, handle, avatar string) *respond.UserSummaryRespond {
	return &respond.UserSummaryRespond{
		UserId:   uuid,
		Nickname: nickname,
		Handle:   handle,
		Avatar:   avatar,
	}
}
