package repository

import (
	"huddle_server/internal/model"

	"gorm.io/gorm"
)

type eventShareRepository struct {
	db *gorm.DB
}

// NewEventShareRepository 创建事件共享关系 Repository
func NewEventShareRepository(db *gorm.DB) EventShareRepository {
	return &eventShareRepository{db: db}
}

// FindCircleIdsByEvent 查找单个事件共享到的圈子 ID
func (r *eventShareRepository) FindCircleIdsByEvent(eventId string, eventKind int8) ([]string, error) {
	var circleIds []string
	if err := r.db.Model(&model.EventCircleShare{}).
		Where("event_id = ? AND event_kind = ?", eventId, eventKind).
		Pluck("circle_id", &circleIds).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询事件共享圈子 event_id=%s", eventId)
	}
	return circleIds, nil
}

// FindByEvents 批量查找事件的共享圈子
func (r *eventShareRepository) FindByEvents(eventKind int8, eventIds []string) (map[string][]string, error) {
	result := make(map[string][]string, len(eventIds))
	if len(eventIds) == 0 {
		return result, nil
	}
	var shares []model.EventCircleShare
	if err := r.db.Where("event_kind = ? AND event_id IN ?", eventKind, eventIds).Find(&shares).Error; err != nil {
		return nil, wrapDBError(err, "批量查询事件共享关系")
	}
	for _, share := range shares {
		result[share.EventId] = append(result[share.EventId], share.CircleId)
	}
	return result, nil
}

// CreateBatch 批量写入共享关系
func (r *eventShareRepository) CreateBatch(shares []model.EventCircleShare) error {
	if len(shares) == 0 {
		return nil
	}
	if err := r.db.Create(&shares).Error; err != nil {
		return wrapDBError(err, "写入事件共享关系")
	}
	return nil
}

// DeleteByEvent 删除事件的全部共享关系
func (r *eventShareRepository) DeleteByEvent(eventId string, eventKind int8) error {
	if err := r.db.Where("event_id = ? AND event_kind = ?", eventId, eventKind).
		Delete(&model.EventCircleShare{}).Error; err != nil {
		return wrapDBErrorf(err, "删除事件共享关系 event_id=%s", eventId)
	}
	return nil
}

// DeleteByCircleId 删除圈子的全部共享关系
func (r *eventShareRepository) DeleteByCircleId(circleId string) error {
	if err := r.db.Where("circle_id = ?", circleId).Delete(&model.EventCircleShare{}).Error; err != nil {
		return wrapDBErrorf(err, "删除圈子共享关系 circle_id=%s", circleId)
	}
	return nil
}
