// Package user_status_enum 定义用户状态枚举
package user_status_enum

const (
	NORMAL   int8 = 0 // 正常
	DISABLED int8 = 1 // 禁用
)
