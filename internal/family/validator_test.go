package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

func validFamilyInput() *CreateInput {
	return &CreateInput{
		HeadOfFamily: "Muhammad Ali",
		FamilyMembers: []Member{
			{Name: "Muhammad Ali", Age: 45, Gender: "male", Relation: RelationHead},
			{Name: "Fatima Ali", Age: 40, Gender: "female", Relation: RelationSpouse},
			{Name: "Hassan Ali", Age: 15, Gender: "male", Relation: RelationSon},
		},
		Address:  "House 12, Street 4, Model Town",
		City:     "Lahore",
		District: "Lahore",
		Province: "Punjab",
		Phone:    "+923001234567",
		Email:    "ali.family@example.com",
		Caste:    "Arain",
	}
}

func TestNewEntryDerivesTotalMembers(t *testing.T) {
	in := validFamilyInput()
	in.TotalMembers = 99 // client value is ignored

	entry, err := NewEntry(in)
	require.NoError(t, err)
	assert.Equal(t, 3, entry.TotalMembers)
}

func TestNewEntryRequiresMembers(t *testing.T) {
	in := validFamilyInput()
	in.FamilyMembers = nil

	_, err := NewEntry(in)
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "family_members", ve.Field)
}

func TestNewEntryMemberValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Member)
		field  string
	}{
		{"age too high", func(m *Member) { m.Age = 121 }, "family_members[1].age"},
		{"negative age", func(m *Member) { m.Age = -1 }, "family_members[1].age"},
		{"bad relation", func(m *Member) { m.Relation = "cousin" }, "family_members[1].relation"},
		{"bad gender", func(m *Member) { m.Gender = "unknown" }, "family_members[1].gender"},
		{"short name", func(m *Member) { m.Name = "X" }, "family_members[1].name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validFamilyInput()
			tt.mutate(&in.FamilyMembers[1])

			_, err := NewEntry(in)
			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestNewEntryMemberAgeBounds(t *testing.T) {
	in := validFamilyInput()
	in.FamilyMembers[2].Age = 0
	_, err := NewEntry(in)
	assert.NoError(t, err, "age 0 is a valid newborn")

	in.FamilyMembers[2].Age = 120
	_, err = NewEntry(in)
	assert.NoError(t, err)
}

func TestUpdateSetRecomputesTotal(t *testing.T) {
	members := []Member{
		{Name: "Muhammad Ali", Age: 45, Gender: "male", Relation: RelationHead},
		{Name: "Fatima Ali", Age: 40, Gender: "female", Relation: RelationSpouse},
	}
	fields, err := UpdateSet(&UpdateInput{FamilyMembers: &members})
	require.NoError(t, err)
	assert.Equal(t, 2, fields["total_members"])
	assert.Contains(t, fields, "family_members")
}

func TestUpdateSetRejectsEmptyMembers(t *testing.T) {
	members := []Member{}
	_, err := UpdateSet(&UpdateInput{FamilyMembers: &members})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "family_members", ve.Field)
}

func TestUpdateSetLeavesTotalAlone(t *testing.T) {
	city := "Multan"
	fields, err := UpdateSet(&UpdateInput{City: &city})
	require.NoError(t, err)
	assert.NotContains(t, fields, "total_members")
}
