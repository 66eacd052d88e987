package repository

import (
	"huddle_server/internal/model"

	"gorm.io/gorm"
)

type circleRepository struct {
	db *gorm.DB
}

// NewCircleRepository 创建圈子 Repository
func NewCircleRepository(db *gorm.DB) CircleRepository {
	return &circleRepository{db: db}
}

// FindByUuid 按 UUID 查找圈子
func (r *circleRepository) FindByUuid(uuid string) (*model.Circle, error) {
	var circle model.Circle
	if err := r.db.Where("uuid = ?", uuid).First(&circle).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询圈子 uuid=%s", uuid)
	}
	return &circle, nil
}

// FindByOwnerId 查找某用户拥有的全部圈子
func (r *circleRepository) FindByOwnerId(ownerId string) ([]model.Circle, error) {
	var circles []model.Circle
	if err := r.db.Where("owner_id = ?", ownerId).Find(&circles).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询圈子列表 owner_id=%s", ownerId)
	}
	return circles, nil
}

// FindUuidsByOwnerId 查找某用户拥有的全部圈子 UUID
func (r *circleRepository) FindUuidsByOwnerId(ownerId string) ([]string, error) {
	var uuids []string
	if err := r.db.Model(&model.Circle{}).Where("owner_id = ?", ownerId).Pluck("uuid", &uuids).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询圈子ID列表 owner_id=%s", ownerId)
	}
	return uuids, nil
}

// FindByUuids 批量按 UUID 查找圈子
func (r *circleRepository) FindByUuids(uuids []string) ([]model.Circle, error) {
	if len(uuids) == 0 {
		return []model.Circle{}, nil
	}
	var circles []model.Circle
	if err := r.db.Where("uuid IN ?", uuids).Find(&circles).Error; err != nil {
		return nil, wrapDBError(err, "批量查询圈子")
	}
	return circles, nil
}

// Create 创建圈子
func (r *circleRepository) Create(circle *model.Circle) error {
	if err := r.db.Create(circle).Error; err != nil {
		return wrapDBError(err, "创建圈子")
	}
	return nil
}

// Update 更新圈子
func (r *circleRepository) Update(circle *model.Circle) error {
	if err := r.db.Save(circle).Error; err != nil {
		return wrapDBErrorf(err, "更新圈子 uuid=%s", circle.Uuid)
	}
	return nil
}

// SoftDelete 软删除圈子
func (r *circleRepository) SoftDelete(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Circle{}).Error; err != nil {
		return wrapDBErrorf(err, "删除圈子 uuid=%s", uuid)
	}
	return nil
}
