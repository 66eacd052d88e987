// Package mq 提供通知侧信道
// 共享/RSVP 等动作在这里发出信号，供外部通知服务消费；
// 通知业务本身不在本服务内实现
package mq

import (
	"context"
	"time"
)

// Signal 发往侧信道的通知信号
// 只携带事实，不携带任何通知编排逻辑
type Signal struct {
	Id        string    `json:"id"`         // 雪花 ID，字符串形式避免 JS 精度丢失
	Kind      int8      `json:"kind"`       // signal_kind_enum
	EventId   string    `json:"event_id"`   // 相关事件
	EventKind int8      `json:"event_kind"` // event_kind_enum
	ActorId   string    `json:"actor_id"`   // 触发动作的用户
	CircleIds []string  `json:"circle_ids,omitempty"` // EVENT_SHARED 时的目标圈子
	Response  int8      `json:"response,omitempty"`   // RSVP_SUBMITTED 时的回应值
	CreatedAt time.Time `json:"created_at"`
}

// SignalProducer 信号生产者接口
// 用于解耦 Service 层和具体传输（Kafka / 仅日志）
type SignalProducer interface {
	// Publish 发布一个信号
	// 调用方按 best-effort 处理：失败记日志，不影响主流程
	Publish(ctx context.Context, sig Signal) error
	// Close 释放底层资源
	Close() error
}

// producer 当前注入的 SignalProducer 实现
// 默认是仅记日志的实现，未初始化时调用 Publish 也是安全的
var producer SignalProducer = &logProducer{}

// SetProducer 注入 SignalProducer 实现
func SetProducer(p SignalProducer) {
	if p != nil {
		producer = p
	}
}

// Publish 通过当前生产者发布信号
func Publish(ctx context.Context, sig Signal) error {
	return producer.Publish(ctx, sig)
}

// Close 关闭当前生产者
func Close() error {
	return producer.Close()
}
