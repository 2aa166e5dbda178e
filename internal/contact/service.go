package contact

import (
	"github.com/google/uuid"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

type Service interface {
	Create(in CreateInput) (uuid.UUID, error)
	Get(id string) (*Message, error)
	List(isRead *bool, offset, limit int) ([]Message, int64, error)
	SetRead(id string, read bool) error
	Delete(id string) error
	Stats() (*Stats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(in CreateInput) (uuid.UUID, error) {
	msg, err := NewMessage(&in)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.repo.Create(msg); err != nil {
		return uuid.Nil, apperror.Store("submitting contact message", err)
	}
	return msg.ID, nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.ErrNotFound
	}
	return parsed, nil
}

func (s *service) Get(id string) (*Message, error) {
	msgID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	msg, err := s.repo.FindByID(msgID)
	if err != nil {
		return nil, apperror.Store("retrieving contact message", err)
	}
	return msg, nil
}

func (s *service) List(isRead *bool, offset, limit int) ([]Message, int64, error) {
	messages, total, err := s.repo.Find(isRead, offset, limit)
	if err != nil {
		return nil, 0, apperror.Store("listing contact messages", err)
	}
	return messages, total, nil
}

func (s *service) SetRead(id string, read bool) error {
	msgID, err := parseID(id)
	if err != nil {
		return err
	}
	matched, err := s.repo.SetRead(msgID, read)
	if err != nil {
		return apperror.Store("updating message status", err)
	}
	if !matched {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *service) Delete(id string) error {
	msgID, err := parseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.repo.Delete(msgID)
	if err != nil {
		return apperror.Store("deleting contact message", err)
	}
	if !deleted {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *service) Stats() (*Stats, error) {
	stats, err := s.repo.Stats()
	if err != nil {
		return nil, apperror.Store("retrieving contact statistics", err)
	}
	return stats, nil
}
