package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

func validMessageInput() *CreateInput {
	return &CreateInput{
		Name:    "Ahmed Khan",
		Email:   "ahmed.khan@example.com",
		Phone:   "+923009876543",
		Subject: "Membership inquiry",
		Message: "I would like to know more about joining the association.",
	}
}

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(validMessageInput())
	require.NoError(t, err)
	assert.False(t, msg.IsRead, "new messages start unread")
}

func TestNewMessageRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{"short name", func(in *CreateInput) { in.Name = "A" }, "name"},
		{"bad email", func(in *CreateInput) { in.Email = "not-an-email" }, "email"},
		{"bad phone", func(in *CreateInput) { in.Phone = "03001234567" }, "phone"},
		{"short subject", func(in *CreateInput) { in.Subject = "Hi" }, "subject"},
		{"short message", func(in *CreateInput) { in.Message = "Too short" }, "message"},
		{"long message", func(in *CreateInput) { in.Message = strings.Repeat("x", 1001) }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validMessageInput()
			tt.mutate(in)

			_, err := NewMessage(in)
			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestNewMessageNormalizesEmail(t *testing.T) {
	in := validMessageInput()
	in.Email = " Ahmed.Khan@Example.COM "
	msg, err := NewMessage(in)
	require.NoError(t, err)
	assert.Equal(t, "ahmed.khan@example.com", msg.Email)
}
