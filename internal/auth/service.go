package auth

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

type Service interface {
	Register(in RegisterInput) (uuid.UUID, error)
	Login(in LoginInput) (*Token, error)
	GetUserByID(id uuid.UUID) (*User, error)
	UpdateProfile(id uuid.UUID, fullName string) error
	ListUsers(offset, limit int) ([]User, int64, error)
	SetActive(id string, active bool) error
	Stats() (*Stats, error)
}

type service struct {
	repo   Repository
	tokens *TokenService
}

func NewService(repo Repository, tokens *TokenService) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(in RegisterInput) (uuid.UUID, error) {
	if err := ValidateRegister(&in); err != nil {
		return uuid.Nil, err
	}

	// Friendly pre-check; the unique index is what actually guarantees it.
	if _, err := s.repo.FindByEmail(in.Email); err == nil {
		return uuid.Nil, apperror.ErrDuplicateEmail
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return uuid.Nil, apperror.Store("registering user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, apperror.Store("hashing password", err)
	}

	user := &User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         Role(in.Role),
		IsActive:     true,
	}
	if err := s.repo.Create(user); err != nil {
		return uuid.Nil, apperror.Store("registering user", err)
	}
	return user.ID, nil
}

func (s *service) Login(in LoginInput) (*Token, error) {
	if err := ValidateLogin(&in); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(in.Email)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperror.Store("looking up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountInactive
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Store("issuing token", err)
	}
	return &Token{AccessToken: token, TokenType: "bearer", User: user}, nil
}

func (s *service) GetUserByID(id uuid.UUID) (*User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperror.Store("loading user", err)
	}
	return user, nil
}

func (s *service) UpdateProfile(id uuid.UUID, fullName string) error {
	if err := ValidateFullName(fullName); err != nil {
		return err
	}
	matched, err := s.repo.UpdateFields(id, map[string]interface{}{"full_name": fullName})
	if err != nil {
		return apperror.Store("updating user", err)
	}
	if !matched {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *service) ListUsers(offset, limit int) ([]User, int64, error) {
	users, total, err := s.repo.List(offset, limit)
	if err != nil {
		return nil, 0, apperror.Store("listing users", err)
	}
	return users, total, nil
}

// SetActive is idempotent: activating an active account succeeds and
// leaves it active.
func (s *service) SetActive(id string, active bool) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return apperror.ErrNotFound
	}
	matched, err := s.repo.UpdateFields(userID, map[string]interface{}{"is_active": active})
	if err != nil {
		return apperror.Store("updating user status", err)
	}
	if !matched {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *service) Stats() (*Stats, error) {
	stats, err := s.repo.Stats()
	if err != nil {
		return nil, apperror.Store("computing user statistics", err)
	}
	return stats, nil
}
