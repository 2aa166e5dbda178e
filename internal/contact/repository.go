package contact

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

type Repository interface {
	Create(m *Message) error
	FindByID(id uuid.UUID) (*Message, error)
	Find(isRead *bool, offset, limit int) ([]Message, int64, error)
	SetRead(id uuid.UUID, read bool) (bool, error)
	Delete(id uuid.UUID) (bool, error)
	Stats() (*Stats, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(m *Message) error {
	return r.db.Create(m).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Message, error) {
	var m Message
	err := r.db.Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Find lists messages newest first, optionally filtered by read state.
func (r *repository) Find(isRead *bool, offset, limit int) ([]Message, int64, error) {
	q := r.db.Model(&Message{})
	if isRead != nil {
		q = q.Where("is_read = ?", *isRead)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []Message
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&messages).Error
	return messages, total, err
}

func (r *repository) SetRead(id uuid.UUID, read bool) (bool, error) {
	res := r.db.Model(&Message{}).Where("id = ?", id).Update("is_read", read)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&Message{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	}
	return true, nil
}

func (r *repository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&Message{})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) Stats() (*Stats, error) {
	var s Stats
	err := r.db.Model(&Message{}).
		Select(`
			COUNT(*) as total_messages,
			COALESCE(SUM(CASE WHEN NOT is_read THEN 1 ELSE 0 END), 0) as unread_messages,
			COALESCE(SUM(CASE WHEN is_read THEN 1 ELSE 0 END), 0) as read_messages
		`).
		Scan(&s).Error
	return &s, err
}
