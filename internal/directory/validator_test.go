package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

func validCreateInput() *CreateInput {
	return &CreateInput{
		FullName:      "Muhammad Ali",
		FatherName:    "Ahmed Ali",
		CNIC:          "12345-1234567-1",
		Gender:        "male",
		Phone:         "+923001234567",
		Email:         "muhammad.ali@example.com",
		Qualification: "Masters",
		Profession:    "Engineer",
		City:          "Lahore",
		District:      "Lahore",
		Province:      "Punjab",
		Caste:         "Arain",
		MaritalStatus: "married",
	}
}

func TestNewEntryDefaults(t *testing.T) {
	entry, err := NewEntry(validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, "Pakistan", entry.Country)
	assert.Equal(t, MembershipMember, entry.MembershipType)
	assert.Nil(t, entry.BloodGroup)
}

func TestNewEntryNormalizesEmail(t *testing.T) {
	in := validCreateInput()
	in.Email = "  Muhammad.Ali@Example.COM "
	entry, err := NewEntry(in)
	require.NoError(t, err)
	assert.Equal(t, "muhammad.ali@example.com", entry.Email)
}

func TestNewEntryCNIC(t *testing.T) {
	tests := []struct {
		cnic string
		ok   bool
	}{
		{"12345-1234567-1", true},
		{"1234-1234567-1", false},
		{"12345-123456-1", false},
		{"12345-1234567-12", false},
		{"1234512345671", false},
		{"abcde-1234567-1", false},
	}
	for _, tt := range tests {
		in := validCreateInput()
		in.CNIC = tt.cnic
		_, err := NewEntry(in)
		if tt.ok {
			assert.NoError(t, err, "cnic %q", tt.cnic)
		} else {
			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve, "cnic %q", tt.cnic)
			assert.Equal(t, "cnic", ve.Field)
		}
	}
}

func TestNewEntryPhone(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"+923001234567", true},
		{"03001234567", false},
		{"+92300123456", false},
		{"+9230012345678", false},
		{"+913001234567", false},
	}
	for _, tt := range tests {
		in := validCreateInput()
		in.Phone = tt.phone
		_, err := NewEntry(in)
		if tt.ok {
			assert.NoError(t, err, "phone %q", tt.phone)
		} else {
			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve, "phone %q", tt.phone)
			assert.Equal(t, "phone", ve.Field)
		}
	}
}

func TestNewEntryBloodGroup(t *testing.T) {
	in := validCreateInput()
	bg := "AB+"
	in.BloodGroup = &bg
	entry, err := NewEntry(in)
	require.NoError(t, err)
	require.NotNil(t, entry.BloodGroup)
	assert.Equal(t, BloodGroup("AB+"), *entry.BloodGroup)

	bad := "C+"
	in.BloodGroup = &bad
	_, err = NewEntry(in)
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "blood_group", ve.Field)
}

func TestUpdateSet(t *testing.T) {
	city := "Karachi"
	email := "New.Mail@Example.com"
	fields, err := UpdateSet(&UpdateInput{City: &city, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"city":  "Karachi",
		"email": "new.mail@example.com",
	}, fields)
}

func TestUpdateSetEmpty(t *testing.T) {
	fields, err := UpdateSet(&UpdateInput{})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestUpdateSetRejectsInvalid(t *testing.T) {
	bad := "not-a-phone"
	_, err := UpdateSet(&UpdateInput{Phone: &bad})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "phone", ve.Field)
}
