package auth

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

type Repository interface {
	Create(user *User) error
	FindByEmail(email string) (*User, error)
	FindByID(id uuid.UUID) (*User, error)
	List(offset, limit int) ([]User, int64, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error)
	Stats() (*Stats, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(user *User) error {
	err := r.db.Create(user).Error
	// The unique index on email closes the check-then-insert race.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.ErrDuplicateEmail
	}
	return err
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(id uuid.UUID) (*User, error) {
	var u User
	err := r.db.Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) List(offset, limit int) ([]User, int64, error) {
	var total int64
	if err := r.db.Model(&User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []User
	err := r.db.Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *repository) UpdateFields(id uuid.UUID, fields map[string]interface{}) (bool, error) {
	res := r.db.Model(&User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		// Updates with unchanged values still reports matched rows as
		// affected under gorm, so zero here means no such user.
		var count int64
		if err := r.db.Model(&User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	}
	return true, nil
}

func (r *repository) Stats() (*Stats, error) {
	var s Stats
	err := r.db.Model(&User{}).
		Select(`
			COUNT(*) as total_users,
			COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) as active_users,
			COALESCE(SUM(CASE WHEN NOT is_active THEN 1 ELSE 0 END), 0) as inactive_users,
			COALESCE(SUM(CASE WHEN role = 'admin' THEN 1 ELSE 0 END), 0) as admin_users,
			COALESCE(SUM(CASE WHEN role = 'member' THEN 1 ELSE 0 END), 0) as member_users
		`).
		Scan(&s).Error
	return &s, err
}
