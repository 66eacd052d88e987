package constants

import "time"

const (
	PIN_TTL_HOURS              = 4   // Pin 从创建到过期的时长（小时）
	AUTH_CODE_TTL_MINUTES      = 1   // 短信验证码有效期（分钟）
	USER_CACHE_TTL_MINUTES     = 10  // 用户摘要缓存有效期（分钟）
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 有效期（小时），168小时 = 7天
)

// PinTTL Pin 的固定存活窗口
// 过期是读取时的纯时间比较，没有后台清理进程
func PinTTL() time.Duration {
	return PIN_TTL_HOURS * time.Hour
}
