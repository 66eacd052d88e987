package repository

import (
	"huddle_server/internal/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系人 Repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// FindByUuid 按 UUID 查找联系人
func (r *contactRepository) FindByUuid(uuid string) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.Where("uuid = ?", uuid).First(&contact).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询联系人 uuid=%s", uuid)
	}
	return &contact, nil
}

// FindByOwnerId 查找某用户的全部联系人
func (r *contactRepository) FindByOwnerId(ownerId string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Where("owner_id = ?", ownerId).Find(&contacts).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询联系人列表 owner_id=%s", ownerId)
	}
	return contacts, nil
}

// FindByLinkedUserId 反向查找指向该用户的联系人记录
func (r *contactRepository) FindByLinkedUserId(linkedUserId string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Where("linked_user_id = ?", linkedUserId).Find(&contacts).Error; err != nil {
		return nil, wrapDBErrorf(err, "反向查询联系人 linked_user_id=%s", linkedUserId)
	}
	return contacts, nil
}

// Create 创建联系人
func (r *contactRepository) Create(contact *model.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		return wrapDBError(err, "创建联系人")
	}
	return nil
}

// Update 更新联系人
func (r *contactRepository) Update(contact *model.Contact) error {
	if err := r.db.Save(contact).Error; err != nil {
		return wrapDBErrorf(err, "更新联系人 uuid=%s", contact.Uuid)
	}
	return nil
}

// SoftDelete 软删除联系人
func (r *contactRepository) SoftDelete(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Contact{}).Error; err != nil {
		return wrapDBErrorf(err, "删除联系人 uuid=%s", uuid)
	}
	return nil
}
