package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"huddle_server/internal/config"
	dao "huddle_server/internal/dao/mysql"
	myredis "huddle_server/internal/dao/redis"
	"huddle_server/internal/handler"
	"huddle_server/internal/https_server"
	"huddle_server/internal/infrastructure/logger"
	"huddle_server/internal/infrastructure/mq"
	"huddle_server/internal/infrastructure/sms"
	"huddle_server/internal/service"
	"huddle_server/pkg/util/jwt"
	"huddle_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库
	dao.Init()
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化 JWT 和雪花 ID
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	snowflake.Init()
	zap.L().Info("JWT 和雪花 ID 初始化成功")

	// 6. 初始化 SMS Service
	cache := myredis.GetCacheService()
	smsService, err := sms.Init(cache)
	if err != nil {
		zap.L().Fatal("SMS Service 初始化失败", zap.Error(err))
	}
	zap.L().Info("SMS Service 初始化成功")

	// 7. 初始化通知信号侧信道
	// kafka 模式写 Kafka 供外部通知服务消费，其他模式仅记日志
	if conf.KafkaConfig.SignalMode == "kafka" {
		mq.SetProducer(mq.NewKafkaProducer())
	}
	zap.L().Info("通知信号侧信道初始化成功", zap.String("mode", conf.KafkaConfig.SignalMode))

	// 8. 初始化 Service 层 (依赖注入)
	service.InitServices(dao.Repos, cache, smsService)
	zap.L().Info("Service 层初始化成功")

	// 9. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("参数校验翻译器初始化失败", zap.Error(err))
	}

	// 10. 初始化 HTTP 服务器
	handlers := handler.NewHandlers(service.Svc)
	engine := https_server.Init(handlers)
	zap.L().Info("HTTP 服务器初始化成功")

	// 11. 启动服务
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务已启动", zap.String("host", host), zap.Int("port", port))

	// 设置信号监听，等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")

	if err := mq.Close(); err != nil {
		zap.L().Warn("关闭信号生产者失败", zap.Error(err))
	}

	zap.L().Info("服务器已关闭")
}
