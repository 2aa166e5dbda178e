package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

func TestValidateRegister(t *testing.T) {
	in := &RegisterInput{
		Email:    "  Admin@Example.COM ",
		Password: "secret1",
		FullName: "Admin User",
	}
	require.NoError(t, ValidateRegister(in))
	assert.Equal(t, "admin@example.com", in.Email, "email normalized")
	assert.Equal(t, string(RoleMember), in.Role, "role defaults to member")
}

func TestValidateRegisterRejects(t *testing.T) {
	tests := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"bad email", RegisterInput{Email: "not-an-email", Password: "secret1", FullName: "Some User"}, "email"},
		{"short password", RegisterInput{Email: "a@b.com", Password: "12345", FullName: "Some User"}, "password"},
		{"short name", RegisterInput{Email: "a@b.com", Password: "secret1", FullName: "A"}, "full_name"},
		{"bad role", RegisterInput{Email: "a@b.com", Password: "secret1", FullName: "Some User", Role: "superuser"}, "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(&tt.in)
			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	in := &LoginInput{Email: "User@Example.com", Password: "whatever"}
	require.NoError(t, ValidateLogin(in))
	assert.Equal(t, "user@example.com", in.Email)

	err := ValidateLogin(&LoginInput{Email: "user@example.com"})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleMember))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleMember.AtLeast(RoleMember))
	assert.False(t, RoleMember.AtLeast(RoleAdmin))
}
