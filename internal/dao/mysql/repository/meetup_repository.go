package repository

import (
	"time"

	"huddle_server/internal/model"

	"gorm.io/gorm"
)

type meetupRepository struct {
	db *gorm.DB
}

// NewMeetupRepository 创建 Meetup Repository
func NewMeetupRepository(db *gorm.DB) MeetupRepository {
	return &meetupRepository{db: db}
}

// FindByUuid 按 UUID 查找 Meetup
func (r *meetupRepository) FindByUuid(uuid string) (*model.Meetup, error) {
	var meetup model.Meetup
	if err := r.db.Where("uuid = ?", uuid).First(&meetup).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询Meetup uuid=%s", uuid)
	}
	return &meetup, nil
}

// FindUpcoming 查找全部未开始的 Meetup
func (r *meetupRepository) FindUpcoming(now time.Time) ([]model.Meetup, error) {
	var meetups []model.Meetup
	if err := r.db.Where("scheduled_for >= ?", now).Find(&meetups).Error; err != nil {
		return nil, wrapDBError(err, "查询未开始Meetup列表")
	}
	return meetups, nil
}

// FindByCreatorId 查找某用户创建的全部 Meetup
func (r *meetupRepository) FindByCreatorId(creatorId string) ([]model.Meetup, error) {
	var meetups []model.Meetup
	if err := r.db.Where("creator_id = ?", creatorId).Order("scheduled_for ASC").Find(&meetups).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询Meetup列表 creator_id=%s", creatorId)
	}
	return meetups, nil
}

// Create 创建 Meetup
func (r *meetupRepository) Create(meetup *model.Meetup) error {
	if err := r.db.Create(meetup).Error; err != nil {
		return wrapDBError(err, "创建Meetup")
	}
	return nil
}

// Update 更新 Meetup
func (r *meetupRepository) Update(meetup *model.Meetup) error {
	if err := r.db.Save(meetup).Error; err != nil {
		return wrapDBErrorf(err, "更新Meetup uuid=%s", meetup.Uuid)
	}
	return nil
}

// Delete 硬删除 Meetup（模型不带 DeletedAt）
func (r *meetupRepository) Delete(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Meetup{}).Error; err != nil {
		return wrapDBErrorf(err, "删除Meetup uuid=%s", uuid)
	}
	return nil
}
