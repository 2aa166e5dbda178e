package contact

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is one inbound contact-form submission.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (Message) TableName() string { return "contact_messages" }

type CreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Stats struct {
	TotalMessages  int64 `json:"total_messages"`
	UnreadMessages int64 `json:"unread_messages"`
	ReadMessages   int64 `json:"read_messages"`
}
