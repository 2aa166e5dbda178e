package agent

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

type Service interface {
	Chat(in ChatInput) (*ChatResult, error)
	Conversations(sessionID string, limit int) ([]Conversation, error)
	Stats() (*Stats, error)
}

type service struct {
	repo      Repository
	responder *Responder
}

func NewService(repo Repository, responder *Responder) Service {
	return &service{repo: repo, responder: responder}
}

func (s *service) Chat(in ChatInput) (*ChatResult, error) {
	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return nil, apperror.Validation("message", "must not be empty")
	}
	if len(msg) > 1000 {
		return nil, apperror.Validation("message", "must be at most 1000 characters")
	}

	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply := s.responder.Reply(msg)

	conv := &Conversation{
		SessionID:   sessionID,
		UserMessage: msg,
		AIResponse:  reply,
	}
	if err := s.repo.Create(conv); err != nil {
		// The reply is still useful even if history is lost.
		log.Printf("⚠️ failed to persist conversation %s: %v", sessionID, err)
	}

	return &ChatResult{
		Response:         reply,
		SessionID:        sessionID,
		SuggestedActions: SuggestedActions(reply),
	}, nil
}

func (s *service) Conversations(sessionID string, limit int) ([]Conversation, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.Find(sessionID, limit)
}

func (s *service) Stats() (*Stats, error) {
	return s.repo.Stats()
}
