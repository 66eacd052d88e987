// Package rsvp_response_enum 定义 RSVP 回应枚举
// 没有记录不等于 NOT_ATTENDING，表示"尚未表态"
package rsvp_response_enum

const (
	ATTENDING     int8 = 1 // 参加
	NOT_ATTENDING int8 = 2 // 不参加
)

// Valid 检查回应值是否合法
func Valid(response int8) bool {
	return response == ATTENDING || response == NOT_ATTENDING
}
