package sms

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	"github.com/alibabacloud-go/tea/tea"
	"go.uber.org/zap"

	"huddle_server/internal/config"
	myredis "huddle_server/internal/dao/redis"
	"huddle_server/pkg/constants"
	"huddle_server/pkg/errorx"
	"huddle_server/pkg/util/random"
)

// CodeKey 验证码在缓存中的键
// 登录/注册流程用同一个键读取验证码进行比对
func CodeKey(telephone string) string {
	return "auth_code_" + telephone
}

// localSmsService 本地 mock 实现
// 只把验证码写进缓存并打印到控制台，不调用第三方短信
type localSmsService struct {
	cache myredis.CacheService
}

func (s *localSmsService) SendVerificationCode(telephone string) error {
	key := CodeKey(telephone)
	code, err := s.cache.Get(context.Background(), key)
	if err != nil {
		zap.L().Error("缓存频率检查异常", zap.Error(err), zap.String("phone", telephone))
		return errorx.ErrServerBusy
	}
	if code != "" {
		return errorx.New(errorx.CodeInvalidParam, "目前还不能发送验证码，请稍后重试或输入已发送的验证码")
	}

	code = strconv.Itoa(random.GetRandomInt(6))
	fmt.Printf("【MockSMS】手机号: %s, 验证码: %s\n", telephone, code)

	if err := s.cache.Set(context.Background(), key, code, constants.AUTH_CODE_TTL_MINUTES*time.Minute); err != nil {
		zap.L().Error("缓存写入验证码失败", zap.Error(err))
		return errorx.ErrServerBusy
	}

	return nil
}

// shouldUseMock 判断是否走本地 mock 模式
// configs/config.toml 默认是占位字符串；没配真实 AK 时默认走 mock，
// 便于本机跑通注册/短信登录链路
func shouldUseMock(auth config.AuthCodeConfig) bool {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("HUDDLE_SMS_MODE")))
	if mode == "mock" || mode == "local" || mode == "test" {
		return true
	}
	ak := strings.ToLower(strings.TrimSpace(auth.AccessKeyID))
	ask := strings.ToLower(strings.TrimSpace(auth.AccessKeySecret))
	if ak == "" || ask == "" {
		return true
	}
	if strings.Contains(ak, "your accesskey") || strings.Contains(ask, "your accesskey") {
		return true
	}
	return false
}

// aliyunSmsService 阿里云短信服务实现
type aliyunSmsService struct {
	client *dysmsapi20170525.Client
	cache  myredis.CacheService // 依赖抽象接口而非具体 Redis 实现
}

// Init 初始化 SMS Client 并创建服务实例
// cacheService: 缓存服务接口实例（用于频率限制和验证码存储）
func Init(cacheService myredis.CacheService) (SmsService, error) {
	authCfg := config.GetConfig().AuthCodeConfig
	if shouldUseMock(authCfg) {
		zap.L().Warn("SMS Service 使用本地 Mock 模式（仅写入 Redis，不调用第三方短信）")
		return &localSmsService{cache: cacheService}, nil
	}

	conf := &openapi.Config{
		AccessKeyId:     tea.String(authCfg.AccessKeyID),
		AccessKeySecret: tea.String(authCfg.AccessKeySecret),
	}
	conf.Endpoint = tea.String("dysmsapi.aliyuncs.com")
	client, err := dysmsapi20170525.NewClient(conf)
	if err != nil {
		zap.L().Error("Aliyun SMS Client Init Failed", zap.Error(err))
		return nil, err
	}

	return &aliyunSmsService{client: client, cache: cacheService}, nil
}

// SendVerificationCode 发送验证码核心逻辑
// 包含：频率限制检查、验证码生成、缓存预存、阿里云 API 调用以及失败回滚
func (s *aliyunSmsService) SendVerificationCode(telephone string) error {
	if s.client == nil {
		zap.L().Error("短信服务调用失败：smsClient 未初始化")
		return errorx.New(errorx.CodeServerBusy, "短信服务未初始化")
	}

	// 频率限制：该手机号已有未过期的验证码时不再发送
	key := CodeKey(telephone)
	code, err := s.cache.Get(context.Background(), key)
	if err != nil {
		zap.L().Error("缓存频率检查异常", zap.Error(err), zap.String("phone", telephone))
		return errorx.ErrServerBusy
	}
	if code != "" {
		return errorx.New(errorx.CodeInvalidParam, "目前还不能发送验证码，请稍后重试或输入已发送的验证码")
	}

	// 先写缓存再调 API，API 失败时删除缓存回滚
	code = strconv.Itoa(random.GetRandomInt(6))
	if err := s.cache.Set(context.Background(), key, code, constants.AUTH_CODE_TTL_MINUTES*time.Minute); err != nil {
		zap.L().Error("缓存写入验证码失败", zap.Error(err))
		return errorx.ErrServerBusy
	}

	authCfg := config.GetConfig().AuthCodeConfig
	sendReq := &dysmsapi20170525.SendSmsRequest{
		PhoneNumbers:  tea.String(telephone),
		SignName:      tea.String(authCfg.SignName),
		TemplateCode:  tea.String(authCfg.TemplateCode),
		TemplateParam: tea.String(fmt.Sprintf(`{"code":"%s"}`, code)),
	}
	resp, err := s.client.SendSms(sendReq)
	if err != nil {
		_ = s.cache.Delete(context.Background(), key)
		zap.L().Error("阿里云短信发送失败", zap.Error(err), zap.String("phone", telephone))
		return errorx.Wrap(err, errorx.CodeServerBusy, "短信发送失败")
	}
	var respCode, respMsg string
	if resp.Body != nil {
		respCode = tea.StringValue(resp.Body.Code)
		respMsg = tea.StringValue(resp.Body.Message)
	}
	if respCode != "OK" {
		_ = s.cache.Delete(context.Background(), key)
		zap.L().Error("阿里云短信返回异常",
			zap.String("phone", telephone),
			zap.String("respCode", respCode),
			zap.String("respMsg", respMsg),
		)
		return errorx.New(errorx.CodeServerBusy, "短信发送失败")
	}

	zap.L().Info("短信验证码发送成功", zap.String("phone", telephone))
	return nil
}
