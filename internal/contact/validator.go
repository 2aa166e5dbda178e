package contact

import (
	"strings"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/validate"
)

// NewMessage validates a contact submission and builds the record to
// insert. New messages always start unread.
func NewMessage(in *CreateInput) (*Message, error) {
	if !validate.StrLen(in.Name, 2, 100) {
		return nil, apperror.Validation("name", "must be between 2 and 100 characters")
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if !validate.Email(in.Email) {
		return nil, apperror.Validation("email", "must be a valid email address")
	}
	if !validate.Phone(in.Phone) {
		return nil, apperror.Validation("phone", "must match the format +92XXXXXXXXXX")
	}
	if !validate.StrLen(in.Subject, 5, 200) {
		return nil, apperror.Validation("subject", "must be between 5 and 200 characters")
	}
	if !validate.StrLen(in.Message, 10, 1000) {
		return nil, apperror.Validation("message", "must be between 10 and 1000 characters")
	}

	return &Message{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		IsRead:  false,
	}, nil
}
