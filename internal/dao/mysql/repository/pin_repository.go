package repository

import (
	"time"

	"huddle_server/internal/model"

	"gorm.io/gorm"
)

type pinRepository struct {
	db *gorm.DB
}

// NewPinRepository 创建 Pin Repository
func NewPinRepository(db *gorm.DB) PinRepository {
	return &pinRepository{db: db}
}

// FindByUuid 按 UUID 查找 Pin
func (r *pinRepository) FindByUuid(uuid string) (*model.Pin, error) {
	var pin model.Pin
	if err := r.db.Where("uuid = ?", uuid).First(&pin).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询Pin uuid=%s", uuid)
	}
	return &pin, nil
}

// FindLive 查找全部存活的 Pin
// 过期没有后台清理进程，这里的时间比较就是过期语义本身
func (r *pinRepository) FindLive(now time.Time) ([]model.Pin, error) {
	var pins []model.Pin
	if err := r.db.Where("is_active = ? AND expires_at > ?", true, now).Find(&pins).Error; err != nil {
		return nil, wrapDBError(err, "查询存活Pin列表")
	}
	return pins, nil
}

// FindByCreatorId 查找某用户创建的全部 Pin
func (r *pinRepository) FindByCreatorId(creatorId string) ([]model.Pin, error) {
	var pins []model.Pin
	if err := r.db.Where("creator_id = ?", creatorId).Order("created_at DESC").Find(&pins).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询Pin列表 creator_id=%s", creatorId)
	}
	return pins, nil
}

// Create 创建 Pin
func (r *pinRepository) Create(pin *model.Pin) error {
	if err := r.db.Create(pin).Error; err != nil {
		return wrapDBError(err, "创建Pin")
	}
	return nil
}

// UpdateActive 更新 Pin 的有效标志
func (r *pinRepository) UpdateActive(uuid string, active bool) error {
	if err := r.db.Model(&model.Pin{}).Where("uuid = ?", uuid).Update("is_active", active).Error; err != nil {
		return wrapDBErrorf(err, "更新Pin状态 uuid=%s", uuid)
	}
	return nil
}
