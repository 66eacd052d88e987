// Package signal_kind_enum 定义通知侧信道的信号类型枚举
package signal_kind_enum

const (
	EVENT_SHARED   int8 = 0 // 事件被共享到圈子
	RSVP_SUBMITTED int8 = 1 // 用户提交/修改了 RSVP
)
