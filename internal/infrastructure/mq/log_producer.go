package mq

import (
	"context"

	"go.uber.org/zap"
)

// logProducer 仅记日志的信号实现
// signalMode = "log" 时使用，本机开发无需 Kafka 也能跑通全流程
type logProducer struct{}

func (p *logProducer) Publish(_ context.Context, sig Signal) error {
	zap.L().Info("notifier signal",
		zap.String("id", sig.Id),
		zap.Int8("kind", sig.Kind),
		zap.String("eventId", sig.EventId),
		zap.Int8("eventKind", sig.EventKind),
		zap.String("actorId", sig.ActorId),
	)
	return nil
}

func (p *logProducer) Close() error { return nil }
