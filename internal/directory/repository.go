package directory

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

// exportLimit caps bulk dumps for the export endpoints.
const exportLimit = 10000

type Repository interface {
	Create(e *Entry) error
	FindByID(id uuid.UUID) (*Entry, error)
	Find(f Filter, offset, limit int) ([]Entry, int64, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error)
	Delete(id uuid.UUID) (bool, error)
	Count() (int64, error)
	CommunityStrength() (int64, error)
	All() ([]Entry, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(e *Entry) error {
	return r.db.Create(e).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Entry, error) {
	var e Entry
	err := r.db.Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (f Filter) apply(q *gorm.DB) *gorm.DB {
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Profession != "" {
		q = q.Where("profession = ?", f.Profession)
	}
	if f.Caste != "" {
		q = q.Where("caste = ?", f.Caste)
	}
	if f.Province != "" {
		q = q.Where("province = ?", f.Province)
	}
	if f.Gender != "" {
		q = q.Where("gender = ?", f.Gender)
	}
	if f.MembershipType != "" {
		q = q.Where("membership_type = ?", f.MembershipType)
	}
	return q
}

func (r *repository) Find(f Filter, offset, limit int) ([]Entry, int64, error) {
	q := f.apply(r.db.Model(&Entry{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []Entry
	err := q.Offset(offset).Limit(limit).Find(&entries).Error
	return entries, total, err
}

func (r *repository) UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error) {
	res := r.db.Model(&Entry{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&Entry{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	}
	return true, nil
}

func (r *repository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&Entry{})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&Entry{}).Count(&total).Error
	return total, err
}

// CommunityStrength sums the self-reported household sizes across all
// entries. NULL counts contribute nothing.
func (r *repository) CommunityStrength() (int64, error) {
	var total int64
	err := r.db.Model(&Entry{}).
		Select("COALESCE(SUM(family_members_count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) All() ([]Entry, error) {
	var entries []Entry
	err := r.db.Limit(exportLimit).Find(&entries).Error
	return entries, err
}
