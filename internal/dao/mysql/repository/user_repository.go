package repository

import (
	"strings"

	"huddle_server/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUuid 按 UUID 查找用户
func (r *userRepository) FindByUuid(uuid string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 uuid=%s", uuid)
	}
	return &user, nil
}

// FindByTelephone 按手机号查找用户
func (r *userRepository) FindByTelephone(telephone string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.Where("telephone = ?", telephone).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 telephone=%s", telephone)
	}
	return &user, nil
}

// FindByHandle 按用户名柄查找用户（大小写不敏感，统一小写比较）
func (r *userRepository) FindByHandle(handle string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.Where("handle = ?", strings.ToLower(handle)).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 handle=%s", handle)
	}
	return &user, nil
}

// FindByUuids 批量按 UUID 查找用户
func (r *userRepository) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	if len(uuids) == 0 {
		return []model.UserInfo{}, nil
	}
	var users []model.UserInfo
	if err := r.db.Where("uuid IN ?", uuids).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "批量查询用户")
	}
	return users, nil
}

// Create 创建用户
func (r *userRepository) Create(user *model.UserInfo) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// Update 更新用户信息
func (r *userRepository) Update(user *model.UserInfo) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBErrorf(err, "更新用户 uuid=%s", user.Uuid)
	}
	return nil
}
