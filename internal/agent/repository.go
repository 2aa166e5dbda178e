package agent

import (
	"gorm.io/gorm"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

type Repository interface {
	Create(conv *Conversation) error
	Find(sessionID string, limit int) ([]Conversation, error)
	Stats() (*Stats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(conv *Conversation) error {
	if err := r.db.Create(conv).Error; err != nil {
		return apperror.Store("agent.Create", err)
	}
	return nil
}

func (r *repository) Find(sessionID string, limit int) ([]Conversation, error) {
	var convs []Conversation
	q := r.db.Order("timestamp DESC").Limit(limit)
	if sessionID != "" {
		q = q.Where("session_id = ?", sessionID)
	}
	if err := q.Find(&convs).Error; err != nil {
		return nil, apperror.Store("agent.Find", err)
	}
	return convs, nil
}

func (r *repository) Stats() (*Stats, error) {
	var stats Stats
	err := r.db.Model(&Conversation{}).
		Select(`COUNT(*) AS total_conversations,
			COUNT(DISTINCT session_id) AS unique_sessions,
			COALESCE(SUM(CASE WHEN timestamp >= NOW() - INTERVAL '24 hours' THEN 1 ELSE 0 END), 0) AS recent_conversations`).
		Scan(&stats).Error
	if err != nil {
		return nil, apperror.Store("agent.Stats", err)
	}
	return &stats, nil
}
