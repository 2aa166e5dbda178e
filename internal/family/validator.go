package family

import (
	"fmt"
	"strings"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/directory"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/validate"
)

func validateMember(i int, m *Member) error {
	field := func(name string) string { return fmt.Sprintf("family_members[%d].%s", i, name) }

	if !validate.StrLen(m.Name, 2, 100) {
		return apperror.Validation(field("name"), "must be between 2 and 100 characters")
	}
	if m.Age < 0 || m.Age > 120 {
		return apperror.Validation(field("age"), "must be between 0 and 120")
	}
	if !m.Gender.Valid() {
		return apperror.Validation(field("gender"), "must be one of: male, female, other")
	}
	if !m.Relation.Valid() {
		return apperror.Validation(field("relation"), "must be a valid relation to the head of family")
	}
	if m.CNIC != nil && !validate.CNIC(*m.CNIC) {
		return apperror.Validation(field("cnic"), "must match the format 12345-1234567-1")
	}
	if m.Phone != nil && !validate.Phone(*m.Phone) {
		return apperror.Validation(field("phone"), "must match the format +92XXXXXXXXXX")
	}
	if m.BloodGroup != nil && !directory.BloodGroup(*m.BloodGroup).Valid() {
		return apperror.Validation(field("blood_group"), "must be a valid blood group")
	}
	if m.Notes != nil && !validate.StrLen(*m.Notes, 0, 500) {
		return apperror.Validation(field("notes"), "must be at most 500 characters")
	}
	return nil
}

// NewEntry validates a creation payload and builds the record to insert.
// TotalMembers is derived from the member list regardless of the
// client-supplied value.
func NewEntry(in *CreateInput) (*Entry, error) {
	if !validate.StrLen(in.HeadOfFamily, 2, 100) {
		return nil, apperror.Validation("head_of_family", "must be between 2 and 100 characters")
	}
	if len(in.FamilyMembers) == 0 {
		return nil, apperror.Validation("family_members", "must contain at least one member")
	}
	for i := range in.FamilyMembers {
		if err := validateMember(i, &in.FamilyMembers[i]); err != nil {
			return nil, err
		}
	}
	if !validate.StrLen(in.Address, 5, 200) {
		return nil, apperror.Validation("address", "must be between 5 and 200 characters")
	}
	if !validate.StrLen(in.City, 2, 50) {
		return nil, apperror.Validation("city", "must be between 2 and 50 characters")
	}
	if !validate.StrLen(in.District, 2, 50) {
		return nil, apperror.Validation("district", "must be between 2 and 50 characters")
	}
	if !validate.StrLen(in.Province, 2, 50) {
		return nil, apperror.Validation("province", "must be between 2 and 50 characters")
	}
	if !validate.Phone(in.Phone) {
		return nil, apperror.Validation("phone", "must match the format +92XXXXXXXXXX")
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if !validate.Email(in.Email) {
		return nil, apperror.Validation("email", "must be a valid email address")
	}
	if !validate.StrLen(in.Caste, 2, 50) {
		return nil, apperror.Validation("caste", "must be between 2 and 50 characters")
	}
	if in.MembershipType == "" {
		in.MembershipType = string(directory.MembershipMember)
	}
	if !directory.MembershipType(in.MembershipType).Valid() {
		return nil, apperror.Validation("membership_type", "must be one of: member, volunteer, donor")
	}

	return &Entry{
		HeadOfFamily:   in.HeadOfFamily,
		FamilyMembers:  in.FamilyMembers,
		TotalMembers:   len(in.FamilyMembers),
		Address:        in.Address,
		City:           in.City,
		District:       in.District,
		Province:       in.Province,
		Phone:          in.Phone,
		Email:          in.Email,
		Caste:          in.Caste,
		MembershipType: directory.MembershipType(in.MembershipType),
		FamilyPhoto:    in.FamilyPhoto,
	}, nil
}

// UpdateSet validates the present fields and returns the field-update
// set. Replacing the member list recomputes total_members server-side.
func UpdateSet(in *UpdateInput) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if in.HeadOfFamily != nil {
		if !validate.StrLen(*in.HeadOfFamily, 2, 100) {
			return nil, apperror.Validation("head_of_family", "must be between 2 and 100 characters")
		}
		fields["head_of_family"] = *in.HeadOfFamily
	}
	if in.FamilyMembers != nil {
		members := *in.FamilyMembers
		if len(members) == 0 {
			return nil, apperror.Validation("family_members", "must contain at least one member")
		}
		for i := range members {
			if err := validateMember(i, &members[i]); err != nil {
				return nil, err
			}
		}
		fields["family_members"] = toJSONSlice(members)
		fields["total_members"] = len(members)
	}
	if in.Address != nil {
		if !validate.StrLen(*in.Address, 5, 200) {
			return nil, apperror.Validation("address", "must be between 5 and 200 characters")
		}
		fields["address"] = *in.Address
	}
	if in.City != nil {
		if !validate.StrLen(*in.City, 2, 50) {
			return nil, apperror.Validation("city", "must be between 2 and 50 characters")
		}
		fields["city"] = *in.City
	}
	if in.District != nil {
		if !validate.StrLen(*in.District, 2, 50) {
			return nil, apperror.Validation("district", "must be between 2 and 50 characters")
		}
		fields["district"] = *in.District
	}
	if in.Province != nil {
		if !validate.StrLen(*in.Province, 2, 50) {
			return nil, apperror.Validation("province", "must be between 2 and 50 characters")
		}
		fields["province"] = *in.Province
	}
	if in.Phone != nil {
		if !validate.Phone(*in.Phone) {
			return nil, apperror.Validation("phone", "must match the format +92XXXXXXXXXX")
		}
		fields["phone"] = *in.Phone
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if !validate.Email(email) {
			return nil, apperror.Validation("email", "must be a valid email address")
		}
		fields["email"] = email
	}
	if in.Caste != nil {
		if !validate.StrLen(*in.Caste, 2, 50) {
			return nil, apperror.Validation("caste", "must be between 2 and 50 characters")
		}
		fields["caste"] = *in.Caste
	}
	if in.MembershipType != nil {
		if !directory.MembershipType(*in.MembershipType).Valid() {
			return nil, apperror.Validation("membership_type", "must be one of: member, volunteer, donor")
		}
		fields["membership_type"] = *in.MembershipType
	}
	if in.FamilyPhoto != nil {
		fields["family_photo"] = *in.FamilyPhoto
	}

	return fields, nil
}
