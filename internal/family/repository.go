package family

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

type Repository interface {
	Create(e *Entry) error
	FindByID(id uuid.UUID) (*Entry, error)
	Find(f Filter, offset, limit int) ([]Entry, int64, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error)
	Delete(id uuid.UUID) (bool, error)
	TotalPopulation() (int64, error)
	CasteRows() ([]casteRow, error)
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
		q = q.Where("city ILIKE ?", "%"+f.City+"%")
	}
	if f.Caste != "" {
		q = q.Where("caste ILIKE ?", "%"+f.Caste+"%")
	}
	if f.Province != "" {
		q = q.Where("province ILIKE ?", "%"+f.Province+"%")
	}
	if f.District != "" {
		q = q.Where("district ILIKE ?", "%"+f.District+"%")
	}
	if f.MembershipType != "" {
		q = q.Where("membership_type = ?", f.MembershipType)
	}
	if f.MinMembers > 0 {
		q = q.Where("total_members >= ?", f.MinMembers)
	}
	if f.MaxMembers > 0 {
		q = q.Where("total_members <= ?", f.MaxMembers)
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

func (r *repository) TotalPopulation() (int64, error) {
	var total int64
	err := r.db.Model(&Entry{}).
		Select("COALESCE(SUM(total_members), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) CasteRows() ([]casteRow, error) {
	var rows []casteRow
	err := r.db.Model(&Entry{}).
		Select(`
			caste,
			COUNT(*) as family_count,
			COALESCE(SUM(total_members), 0) as total_members
		`).
		Group("caste").
		Order("total_members DESC").
		Scan(&rows).Error
	return rows, err
}
