package directory

import (
	"strings"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/validate"
)

// NewEntry validates a creation payload and builds the record to insert.
// Country defaults to Pakistan, membership type to member.
func NewEntry(in *CreateInput) (*Entry, error) {
	if !validate.StrLen(in.FullName, 2, 100) {
		return nil, apperror.Validation("full_name", "must be between 2 and 100 characters")
	}
	if !validate.StrLen(in.FatherName, 2, 100) {
		return nil, apperror.Validation("father_name", "must be between 2 and 100 characters")
	}
	if !validate.CNIC(in.CNIC) {
		return nil, apperror.Validation("cnic", "must match the format 12345-1234567-1")
	}
	if !Gender(in.Gender).Valid() {
		return nil, apperror.Validation("gender", "must be one of: male, female, other")
	}
	if !validate.Phone(in.Phone) {
		return nil, apperror.Validation("phone", "must match the format +92XXXXXXXXXX")
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if !validate.Email(in.Email) {
		return nil, apperror.Validation("email", "must be a valid email address")
	}
	if !validate.StrLen(in.Qualification, 2, 100) {
		return nil, apperror.Validation("qualification", "must be between 2 and 100 characters")
	}
	if !validate.StrLen(in.Profession, 2, 100) {
		return nil, apperror.Validation("profession", "must be between 2 and 100 characters")
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
	if in.Country == "" {
		in.Country = "Pakistan"
	}
	if !validate.StrLen(in.Country, 1, 50) {
		return nil, apperror.Validation("country", "must be at most 50 characters")
	}

	var bloodGroup *BloodGroup
	if in.BloodGroup != nil && *in.BloodGroup != "" {
		bg := BloodGroup(*in.BloodGroup)
		if !bg.Valid() {
			return nil, apperror.Validation("blood_group", "must be a valid blood group")
		}
		bloodGroup = &bg
	}

	if !validate.StrLen(in.Caste, 2, 50) {
		return nil, apperror.Validation("caste", "must be between 2 and 50 characters")
	}
	if !MaritalStatus(in.MaritalStatus).Valid() {
		return nil, apperror.Validation("marital_status", "must be one of: single, married, divorced, widowed")
	}
	if in.MembershipType == "" {
		in.MembershipType = string(MembershipMember)
	}
	if !MembershipType(in.MembershipType).Valid() {
		return nil, apperror.Validation("membership_type", "must be one of: member, volunteer, donor")
	}
	if in.Notes != nil && !validate.StrLen(*in.Notes, 0, 500) {
		return nil, apperror.Validation("notes", "must be at most 500 characters")
	}
	if in.FamilyMembersCount != nil && *in.FamilyMembersCount < 0 {
		return nil, apperror.Validation("family_members_count", "must not be negative")
	}

	return &Entry{
		FullName:           in.FullName,
		FatherName:         in.FatherName,
		CNIC:               in.CNIC,
		Gender:             Gender(in.Gender),
		Phone:              in.Phone,
		Email:              in.Email,
		Qualification:      in.Qualification,
		Profession:         in.Profession,
		City:               in.City,
		District:           in.District,
		Province:           in.Province,
		Country:            in.Country,
		BloodGroup:         bloodGroup,
		Caste:              in.Caste,
		MaritalStatus:      MaritalStatus(in.MaritalStatus),
		MembershipType:     MembershipType(in.MembershipType),
		Notes:              in.Notes,
		ProfileImage:       in.ProfileImage,
		FamilyMembersCount: in.FamilyMembersCount,
	}, nil
}

// UpdateSet validates whichever fields are present and returns the
// explicit field-update set to merge. Absent fields stay untouched.
func UpdateSet(in *UpdateInput) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if in.FullName != nil {
		if !validate.StrLen(*in.FullName, 2, 100) {
			return nil, apperror.Validation("full_name", "must be between 2 and 100 characters")
		}
		fields["full_name"] = *in.FullName
	}
	if in.FatherName != nil {
		if !validate.StrLen(*in.FatherName, 2, 100) {
			return nil, apperror.Validation("father_name", "must be between 2 and 100 characters")
		}
		fields["father_name"] = *in.FatherName
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
	if in.Qualification != nil {
		if !validate.StrLen(*in.Qualification, 2, 100) {
			return nil, apperror.Validation("qualification", "must be between 2 and 100 characters")
		}
		fields["qualification"] = *in.Qualification
	}
	if in.Profession != nil {
		if !validate.StrLen(*in.Profession, 2, 100) {
			return nil, apperror.Validation("profession", "must be between 2 and 100 characters")
		}
		fields["profession"] = *in.Profession
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
	if in.BloodGroup != nil {
		if !BloodGroup(*in.BloodGroup).Valid() {
			return nil, apperror.Validation("blood_group", "must be a valid blood group")
		}
		fields["blood_group"] = *in.BloodGroup
	}
	if in.Caste != nil {
		if !validate.StrLen(*in.Caste, 2, 50) {
			return nil, apperror.Validation("caste", "must be between 2 and 50 characters")
		}
		fields["caste"] = *in.Caste
	}
	if in.MaritalStatus != nil {
		if !MaritalStatus(*in.MaritalStatus).Valid() {
			return nil, apperror.Validation("marital_status", "must be one of: single, married, divorced, widowed")
		}
		fields["marital_status"] = *in.MaritalStatus
	}
	if in.MembershipType != nil {
		if !MembershipType(*in.MembershipType).Valid() {
			return nil, apperror.Validation("membership_type", "must be one of: member, volunteer, donor")
		}
		fields["membership_type"] = *in.MembershipType
	}
	if in.Notes != nil {
		if !validate.StrLen(*in.Notes, 0, 500) {
			return nil, apperror.Validation("notes", "must be at most 500 characters")
		}
		fields["notes"] = *in.Notes
	}
	if in.ProfileImage != nil {
		fields["profile_image"] = *in.ProfileImage
	}
	if in.FamilyMembersCount != nil {
		if *in.FamilyMembersCount < 0 {
			return nil, apperror.Validation("family_members_count", "must not be negative")
		}
		fields["family_members_count"] = *in.FamilyMembersCount
	}

	return fields, nil
}
