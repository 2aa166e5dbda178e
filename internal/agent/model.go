package agent

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Conversation is one chat exchange, append-only. Retention is an
// external concern; nothing here mutates or deletes rows.
type Conversation struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID   string         `gorm:"not null;index" json:"session_id"`
	UserMessage string         `gorm:"type:text;not null" json:"user_message"`
	AIResponse  string         `gorm:"type:text;not null" json:"ai_response"`
	Timestamp   time.Time      `gorm:"autoCreateTime" json:"timestamp"`
	UserInfo    datatypes.JSON `json:"user_info,omitempty"`
}

func (cv *Conversation) BeforeCreate(tx *gorm.DB) error {
	if cv.ID == uuid.Nil {
		cv.ID = uuid.New()
	}
	return nil
}

func (Conversation) TableName() string { return "conversations" }

type ChatInput struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type ChatResult struct {
	Response         string   `json:"response"`
	SessionID        string   `json:"session_id"`
	SuggestedActions []string `json:"suggested_actions"`
}

type Stats struct {
	TotalConversations  int64 `json:"total_conversations"`
	UniqueSessions      int64 `json:"unique_sessions"`
	RecentConversations int64 `json:"recent_conversations_24h"`
}
