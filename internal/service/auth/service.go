// Package auth 实现认证业务逻辑
// 注册/登录成功发放 Access + Refresh 双 Token；
// Refresh Token 的 tokenID 存 Redis 实现单点互踢和登出作废。
package auth

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"huddle_server/internal/dao/mysql/repository"
	myredis "huddle_server/internal/dao/redis"
	"huddle_server/internal/dto/request"
	"huddle_server/internal/dto/respond"
	"huddle_server/internal/infrastructure/sms"
	"huddle_server/internal/model"
	"huddle_server/pkg/constants"
	"huddle_server/pkg/enum/user/user_status_enum"
	"huddle_server/pkg/errorx"
	"huddle_server/pkg/util/jwt"
	"huddle_server/pkg/util/random"
)

type authService struct {
	repos *repository.Repositories
	cache myredis.CacheService
	sms   sms.SmsService
}

// NewAuthService 构造函数
func NewAuthService(repos *repository.Repositories, cache myredis.CacheService, smsService sms.SmsService) *authService {
	return &authService{repos: repos, cache: cache, sms: smsService}
}

// refreshKey 存当前有效 Refresh Token ID 的键
// 一个用户同时只有一个有效的 Refresh Token，新登录挤掉旧会话
func refreshKey(userId string) string {
	return "refresh_token_" + userId
}

// SendSmsCode 发送短信验证码
func (s *authService) SendSmsCode(telephone string) error {
	return s.sms.SendVerificationCode(telephone)
}

// checkAuthCode 校验短信验证码，一次性使用，校验通过即删除
func (s *authService) checkAuthCode(telephone, authCode string) error {
	ctx := context.Background()
	stored, err := s.cache.Get(ctx, sms.CodeKey(telephone))
	if err != nil {
		zap.L().Error("check auth code: read cache error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if stored == "" || stored != authCode {
		return errorx.New(errorx.CodeInvalidAuth, "验证码错误或已过期")
	}
	if err := s.cache.Delete(ctx, sms.CodeKey(telephone)); err != nil {
		zap.L().Warn("check auth code: delete code error", zap.Error(err))
	}
	return nil
}

// issueTokens 发放双 Token 并登记 Refresh Token ID
func (s *authService) issueTokens(userId string) (accessToken, refreshToken string, err error) {
	accessToken, err = jwt.GenerateAccessToken(userId)
	if err != nil {
		zap.L().Error("issue tokens: generate access token error", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(userId)
	if err != nil {
		zap.L().Error("issue tokens: generate refresh token error", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	ttl := constants.REFRESH_TOKEN_EXPIRY_HOURS * time.Hour
	if err = s.cache.Set(context.Background(), refreshKey(userId), tokenID, ttl); err != nil {
		zap.L().Error("issue tokens: store refresh token id error", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	return accessToken, refreshToken, nil
}

// Register 用户注册
// 手机号和柄都要求未被占用；注册成功即视为登录
func (s *authService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if err := s.checkAuthCode(req.Telephone, req.AuthCode); err != nil {
		return nil, err
	}

	if _, err := s.repos.User.FindByTelephone(req.Telephone); err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "该手机号已注册")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("register: find by telephone error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	handle := strings.ToLower(strings.TrimSpace(req.Handle))
	if _, err := s.repos.User.FindByHandle(handle); err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "该用户名柄已被占用")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("register: find by handle error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	user := &model.UserInfo{
		Uuid:        "U" + random.GetNowAndLenRandomString(13),
		Nickname:    req.Nickname,
		Handle:      handle,
		Telephone:   req.Telephone,
		Avatar:      req.Avatar,
		RawPassword: req.Password,
		Status:      user_status_enum.NORMAL,
	}
	if err := s.repos.User.Create(user); err != nil {
		zap.L().Error("register: create user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	accessToken, refreshToken, err := s.issueTokens(user.Uuid)
	if err != nil {
		return nil, err
	}
	return &respond.RegisterRespond{
		Uuid:         user.Uuid,
		Nickname:     user.Nickname,
		Handle:       user.Handle,
		Avatar:       user.Avatar,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login 密码登录
func (s *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByTelephone(req.Telephone)
	if err != nil {
		if errorx.IsNotFound(err) {
			// 不区分"用户不存在"和"密码错误"，避免探测注册状态
			return nil, errorx.New(errorx.CodeInvalidAuth, "手机号或密码错误")
		}
		zap.L().Error("login: find user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidAuth, "手机号或密码错误")
	}
	return s.loginRespond(user)
}

// SmsLogin 短信验证码登录
func (s *authService) SmsLogin(req request.SmsLoginRequest) (*respond.LoginRespond, error) {
	if err := s.checkAuthCode(req.Telephone, req.AuthCode); err != nil {
		return nil, err
	}
	user, err := s.repos.User.FindByTelephone(req.Telephone)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "该手机号尚未注册")
		}
		zap.L().Error("sms login: find user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.loginRespond(user)
}

// loginRespond 登录后置检查与响应组装
func (s *authService) loginRespond(user *model.UserInfo) (*respond.LoginRespond, error) {
	if user.Status == user_status_enum.DISABLED {
		return nil, errorx.New(errorx.CodeForbidden, "账号已被禁用")
	}
	accessToken, refreshToken, err := s.issueTokens(user.Uuid)
	if err != nil {
		return nil, err
	}
	return &respond.LoginRespond{
		Uuid:         user.Uuid,
		Nickname:     user.Nickname,
		Handle:       user.Handle,
		Avatar:       user.Avatar,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken 刷新 Access Token
// 校验 Refresh Token 的 tokenID 和 Redis 登记一致后轮换，旧 Refresh Token 随即失效
func (s *authService) RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 无效或已过期")
	}
	if claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 无效或已过期")
	}

	stored, err := s.cache.Get(context.Background(), refreshKey(claims.UserID))
	if err != nil {
		zap.L().Error("refresh token: read cache error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if stored == "" || stored != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 已被作废，请重新登录")
	}

	accessToken, newRefreshToken, err := s.issueTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &respond.RefreshTokenRespond{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout 登出，作废当前 Refresh Token
func (s *authService) Logout(userId string) error {
	if err := s.cache.Delete(context.Background(), refreshKey(userId)); err != nil {
		zap.L().Error("logout: delete refresh token error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
