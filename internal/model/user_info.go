// Package model 定义数据库实体模型
// 本文件定义用户信息模型，包含用户基本资料和认证信息
package model

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserInfo 用户信息模型
// 对应数据库 user_info 表
type UserInfo struct {
	gorm.Model // 内嵌 GORM 模型，包含 ID、CreatedAt、UpdatedAt、DeletedAt

	// Uuid 用户唯一标识
	// 格式：U + 时间戳随机字符串，如 "U260829Ab3dE1234567"
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:用户唯一id"`

	// Nickname 显示名称
	Nickname string `gorm:"column:nickname;type:varchar(30);not null;comment:昵称"`

	// Handle 用户名柄，全局唯一，统一小写存储（大小写不敏感）
	Handle string `gorm:"column:handle;uniqueIndex;type:varchar(30);not null;comment:用户名柄，小写存储"`

	// Telephone 手机号码，用于登录验证
	Telephone string `gorm:"column:telephone;index;not null;type:char(11);comment:电话"`

	// Avatar 用户头像 URL
	Avatar string `gorm:"column:avatar;type:varchar(255);comment:头像"`

	// Password 密码（bcrypt 哈希后存储，不存明文）
	Password string `gorm:"column:password;type:varchar(100);not null;comment:密码"`

	// Status 账号状态，0=正常, 1=禁用
	Status int8 `gorm:"column:status;index;not null;comment:状态，0.正常，1.禁用"`

	// RawPassword 明文密码（不存入数据库）
	// 用于接收前端传来的明文密码，在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (UserInfo) TableName() string {
	return "user_info"
}

// BeforeSave GORM Hook：在创建和更新前自动调用
// 将 RawPassword 明文密码加密后存入 Password 字段，并把 Handle 归一化为小写
func (u *UserInfo) BeforeSave(tx *gorm.DB) (err error) {
	u.Handle = strings.ToLower(strings.TrimSpace(u.Handle))
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = "" // 清空明文，防止泄露
	}
	return nil
}

// CheckPassword 校验密码是否正确
// plaintext: 用户输入的明文密码
func (u *UserInfo) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
