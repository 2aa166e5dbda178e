package auth

import (
	"strings"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/validate"
)

// ValidateRegister checks a registration payload and normalizes its
// email and role in place. Role defaults to member.
func ValidateRegister(in *RegisterInput) error {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if !validate.Email(in.Email) {
		return apperror.Validation("email", "must be a valid email address")
	}
	if len(in.Password) < 6 {
		return apperror.Validation("password", "must be at least 6 characters")
	}
	if !validate.StrLen(in.FullName, 2, 100) {
		return apperror.Validation("full_name", "must be between 2 and 100 characters")
	}
	if in.Role == "" {
		in.Role = string(RoleMember)
	}
	if !Role(in.Role).Valid() {
		return apperror.Validation("role", "must be one of: admin, member")
	}
	return nil
}

func ValidateLogin(in *LoginInput) error {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if !validate.Email(in.Email) {
		return apperror.Validation("email", "must be a valid email address")
	}
	if in.Password == "" {
		return apperror.Validation("password", "is required")
	}
	return nil
}

func ValidateFullName(name string) error {
	if !validate.StrLen(name, 2, 100) {
		return apperror.Validation("full_name", "must be between 2 and 100 characters")
	}
	return nil
}
