package directory

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

func (m MaritalStatus) Valid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

type BloodGroup string

var bloodGroups = map[BloodGroup]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}

func (b BloodGroup) Valid() bool { return bloodGroups[b] }

type MembershipType string

const (
	MembershipMember    MembershipType = "member"
	MembershipVolunteer MembershipType = "volunteer"
	MembershipDonor     MembershipType = "donor"
)

func (m MembershipType) Valid() bool {
	switch m {
	case MembershipMember, MembershipVolunteer, MembershipDonor:
		return true
	}
	return false
}

// Entry is one individual's membership record.
type Entry struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	FullName   string `gorm:"not null" json:"full_name"`
	FatherName string `gorm:"not null" json:"father_name"`
	CNIC       string `gorm:"column:cnic;not null" json:"cnic"`
	Gender     Gender `gorm:"not null" json:"gender"`

	Phone string `gorm:"not null" json:"phone"`
	Email string `gorm:"not null" json:"email"`

	Qualification string `gorm:"not null" json:"qualification"`
	Profession    string `gorm:"not null" json:"profession"`

	City     string `gorm:"not null" json:"city"`
	District string `gorm:"not null" json:"district"`
	Province string `gorm:"not null" json:"province"`
	Country  string `gorm:"not null;default:'Pakistan'" json:"country"`

	BloodGroup     *BloodGroup    `json:"blood_group"`
	Caste          string         `gorm:"not null" json:"caste"`
	MaritalStatus  MaritalStatus  `gorm:"not null" json:"marital_status"`
	MembershipType MembershipType `gorm:"not null;default:'member'" json:"membership_type"`

	Notes        *string `gorm:"type:text" json:"notes"`
	ProfileImage *string `json:"profile_image"`

	// Self-reported household size used for the community-strength metric
	FamilyMembersCount *int `json:"family_members_count"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (Entry) TableName() string { return "directory_entries" }

type CreateInput struct {
	FullName           string  `json:"full_name"`
	FatherName         string  `json:"father_name"`
	CNIC               string  `json:"cnic"`
	Gender             string  `json:"gender"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Qualification      string  `json:"qualification"`
	Profession         string  `json:"profession"`
	City               string  `json:"city"`
	District           string  `json:"district"`
	Province           string  `json:"province"`
	Country            string  `json:"country"`
	BloodGroup         *string `json:"blood_group"`
	Caste              string  `json:"caste"`
	MaritalStatus      string  `json:"marital_status"`
	MembershipType     string  `json:"membership_type"`
	Notes              *string `json:"notes"`
	ProfileImage       *string `json:"profile_image"`
	FamilyMembersCount *int    `json:"family_members_count"`
}

// UpdateInput carries a partial update: nil means "leave untouched".
// CNIC and gender are immutable after creation.
type UpdateInput struct {
	FullName           *string `json:"full_name"`
	FatherName         *string `json:"father_name"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email"`
	Qualification      *string `json:"qualification"`
	Profession         *string `json:"profession"`
	City               *string `json:"city"`
	District           *string `json:"district"`
	Province           *string `json:"province"`
	BloodGroup         *string `json:"blood_group"`
	Caste              *string `json:"caste"`
	MaritalStatus      *string `json:"marital_status"`
	MembershipType     *string `json:"membership_type"`
	Notes              *string `json:"notes"`
	ProfileImage       *string `json:"profile_image"`
	FamilyMembersCount *int    `json:"family_members_count"`
}

// Filter holds the list query parameters. All matches are exact.
type Filter struct {
	City           string
	Profession     string
	Caste          string
	Province       string
	Gender         string
	MembershipType string
}
