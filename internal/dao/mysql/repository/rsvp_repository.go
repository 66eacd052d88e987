package repository

import (
	"errors"

	"huddle_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type rsvpRepository struct {
	db *gorm.DB
}

// NewRsvpRepository 创建 RSVP Repository
func NewRsvpRepository(db *gorm.DB) RsvpRepository {
	return &rsvpRepository{db: db}
}

// Upsert 插入或覆盖 RSVP
// 依赖 (user_id, event_id, event_kind) 唯一索引做数据库级的原子 upsert，
// 而不是先读后写：并发的重复提交由存储层收敛成一行，最后被序列化的写生效
func (r *rsvpRepository) Upsert(rsvp *model.Rsvp) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "event_id"}, {Name: "event_kind"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"response", "updated_at"}),
	}).Create(rsvp).Error
	if err != nil {
		return wrapDBErrorf(err, "提交RSVP user_id=%s event_id=%s", rsvp.UserId, rsvp.EventId)
	}
	return nil
}

// FindByEvent 查找事件的全部 RSVP
func (r *rsvpRepository) FindByEvent(eventId string, eventKind int8) ([]model.Rsvp, error) {
	var rsvps []model.Rsvp
	if err := r.db.Where("event_id = ? AND event_kind = ?", eventId, eventKind).Find(&rsvps).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询RSVP列表 event_id=%s", eventId)
	}
	return rsvps, nil
}

// FindByUserAndEvent 查找用户对某事件的 RSVP
// 没有记录返回 (nil, nil)，"尚未表态"不是错误
func (r *rsvpRepository) FindByUserAndEvent(userId, eventId string, eventKind int8) (*model.Rsvp, error) {
	var rsvp model.Rsvp
	err := r.db.Where("user_id = ? AND event_id = ? AND event_kind = ?", userId, eventId, eventKind).
		First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDBErrorf(err, "查询RSVP user_id=%s event_id=%s", userId, eventId)
	}
	return &rsvp, nil
}

// DeleteByEvent 删除事件的全部 RSVP
func (r *rsvpRepository) DeleteByEvent(eventId string, eventKind int8) error {
	if err := r.db.Where("event_id = ? AND event_kind = ?", eventId, eventKind).
		Delete(&model.Rsvp{}).Error; err != nil {
		return wrapDBErrorf(err, "删除事件RSVP event_id=%s", eventId)
	}
	return nil
}
