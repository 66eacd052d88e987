package repository

import (
	"huddle_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type circleMemberRepository struct {
	db *gorm.DB
}

// NewCircleMemberRepository 创建圈子成员 Repository
func NewCircleMemberRepository(db *gorm.DB) CircleMemberRepository {
	return &circleMemberRepository{db: db}
}

// FindByCircleId 查找圈子的全部成员关联
func (r *circleMemberRepository) FindByCircleId(circleId string) ([]model.CircleMember, error) {
	var members []model.CircleMember
	if err := r.db.Where("circle_id = ?", circleId).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询圈子成员 circle_id=%s", circleId)
	}
	return members, nil
}

// FindCircleIdsByContactIds 查找这些联系人被放进的全部圈子 ID（去重）
func (r *circleMemberRepository) FindCircleIdsByContactIds(contactIds []string) ([]string, error) {
	if len(contactIds) == 0 {
		return []string{}, nil
	}
	var circleIds []string
	if err := r.db.Model(&model.CircleMember{}).
		Distinct("circle_id").
		Where("contact_id IN ?", contactIds).
		Pluck("circle_id", &circleIds).Error; err != nil {
		return nil, wrapDBError(err, "反向查询圈子成员关系")
	}
	return circleIds, nil
}

// CountByCircleIds 统计每个圈子的成员数
func (r *circleMemberRepository) CountByCircleIds(circleIds []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(circleIds))
	if len(circleIds) == 0 {
		return counts, nil
	}
	type row struct {
		CircleId string
		Cnt      int64
	}
	var rows []row
	if err := r.db.Model(&model.CircleMember{}).
		Select("circle_id, COUNT(*) AS cnt").
		Where("circle_id IN ?", circleIds).
		Group("circle_id").
		Scan(&rows).Error; err != nil {
		return nil, wrapDBError(err, "统计圈子成员数")
	}
	for _, rw := range rows {
		counts[rw.CircleId] = rw.Cnt
	}
	return counts, nil
}

// Create 添加圈子成员
// 以 (circle_id, contact_id) 唯一索引为冲突键，重复添加静默忽略
func (r *circleMemberRepository) Create(member *model.CircleMember) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "circle_id"}, {Name: "contact_id"}},
		DoNothing: true,
	}).Create(member).Error; err != nil {
		return wrapDBError(err, "添加圈子成员")
	}
	return nil
}

// Delete 移除圈子成员
func (r *circleMemberRepository) Delete(circleId, contactId string) error {
	if err := r.db.Where("circle_id = ? AND contact_id = ?", circleId, contactId).
		Delete(&model.CircleMember{}).Error; err != nil {
		return wrapDBErrorf(err, "移除圈子成员 circle_id=%s contact_id=%s", circleId, contactId)
	}
	return nil
}

// DeleteByCircleId 删除圈子的全部成员关联
func (r *circleMemberRepository) DeleteByCircleId(circleId string) error {
	if err := r.db.Where("circle_id = ?", circleId).Delete(&model.CircleMember{}).Error; err != nil {
		return wrapDBErrorf(err, "删除圈子成员关联 circle_id=%s", circleId)
	}
	return nil
}

// DeleteByContactId 删除某联系人的全部圈子关联
func (r *circleMemberRepository) DeleteByContactId(contactId string) error {
	if err := r.db.Where("contact_id = ?", contactId).Delete(&model.CircleMember{}).Error; err != nil {
		return wrapDBErrorf(err, "删除联系人圈子关联 contact_id=%s", contactId)
	}
	return nil
}
