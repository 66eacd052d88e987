// Package event_kind_enum 定义事件类型枚举
package event_kind_enum

const (
	PIN    int8 = 0 // 即时事件，创建后固定窗口内有效
	MEETUP int8 = 1 // 预约事件，有明确的未来时间点
)

// Valid 检查事件类型是否合法
func Valid(kind int8) bool {
	return kind == PIN || kind == MEETUP
}
