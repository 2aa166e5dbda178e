package family

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/directory"
)

type Relation string

const (
	RelationHead     Relation = "head"
	RelationSpouse   Relation = "spouse"
	RelationSon      Relation = "son"
	RelationDaughter Relation = "daughter"
	RelationFather   Relation = "father"
	RelationMother   Relation = "mother"
	RelationBrother  Relation = "brother"
	RelationSister   Relation = "sister"
	RelationOther    Relation = "other"
)

var relations = map[Relation]bool{
	RelationHead: true, RelationSpouse: true, RelationSon: true,
	RelationDaughter: true, RelationFather: true, RelationMother: true,
	RelationBrother: true, RelationSister: true, RelationOther: true,
}

func (r Relation) Valid() bool { return relations[r] }

// Member is one person embedded in a family entry.
type Member struct {
	Name          string           `json:"name"`
	Age           int              `json:"age"`
	Gender        directory.Gender `json:"gender"`
	Relation      Relation         `json:"relation"`
	CNIC          *string          `json:"cnic,omitempty"`
	Profession    *string          `json:"profession,omitempty"`
	Qualification *string          `json:"qualification,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	BloodGroup    *string          `json:"blood_group,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// Entry is one household's membership record. TotalMembers is derived
// from the member list on every write that touches it; the client value
// is never trusted.
type Entry struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	HeadOfFamily  string                       `gorm:"not null" json:"head_of_family"`
	FamilyMembers datatypes.JSONSlice[Member]  `gorm:"not null" json:"family_members"`
	TotalMembers  int                          `gorm:"not null" json:"total_members"`

	Address  string `gorm:"not null" json:"address"`
	City     string `gorm:"not null" json:"city"`
	District string `gorm:"not null" json:"district"`
	Province string `gorm:"not null" json:"province"`

	Phone string `gorm:"not null" json:"phone"`
	Email string `gorm:"not null" json:"email"`

	Caste          string                   `gorm:"not null" json:"caste"`
	MembershipType directory.MembershipType `gorm:"not null;default:'member'" json:"membership_type"`

	FamilyPhoto *string `json:"family_photo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (Entry) TableName() string { return "family_entries" }

// toJSONSlice wraps a member list for the jsonb column in a field-update set.
func toJSONSlice(members []Member) datatypes.JSONSlice[Member] {
	return datatypes.NewJSONSlice(members)
}

type CreateInput struct {
	HeadOfFamily   string   `json:"head_of_family"`
	FamilyMembers  []Member `json:"family_members"`
	TotalMembers   int      `json:"total_members"` // ignored, always recomputed
	Address        string   `json:"address"`
	City           string   `json:"city"`
	District       string   `json:"district"`
	Province       string   `json:"province"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Caste          string   `json:"caste"`
	MembershipType string   `json:"membership_type"`
	FamilyPhoto    *string  `json:"family_photo"`
}

type UpdateInput struct {
	HeadOfFamily   *string   `json:"head_of_family"`
	FamilyMembers  *[]Member `json:"family_members"`
	Address        *string   `json:"address"`
	City           *string   `json:"city"`
	District       *string   `json:"district"`
	Province       *string   `json:"province"`
	Phone          *string   `json:"phone"`
	Email          *string   `json:"email"`
	Caste          *string   `json:"caste"`
	MembershipType *string   `json:"membership_type"`
	FamilyPhoto    *string   `json:"family_photo"`
}

// Filter holds the family list query parameters. Geographic and caste
// fields match by case-insensitive substring; member counts by range.
type Filter struct {
	City           string
	Caste          string
	Province       string
	District       string
	MembershipType string
	MinMembers     int
	MaxMembers     int
}
