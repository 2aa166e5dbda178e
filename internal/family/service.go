package family

import (
	"github.com/google/uuid"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

// CasteStatsResult is the full caste-statistics payload.
type CasteStatsResult struct {
	Stats           []CasteStat
	TotalFamilies   int64
	TotalPopulation int64
}

type Service interface {
	Create(in CreateInput) (id uuid.UUID, totalMembers int, err error)
	Get(id string) (*Entry, error)
	List(f Filter, offset, limit int) ([]Entry, int64, error)
	Update(id string, in UpdateInput) error
	Delete(id string) error
	TotalPopulation() (int64, error)
	CasteStats() (*CasteStatsResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(in CreateInput) (uuid.UUID, int, error) {
	entry, err := NewEntry(&in)
	if err != nil {
		return uuid.Nil, 0, err
	}
	if err := s.repo.Create(entry); err != nil {
		return uuid.Nil, 0, apperror.Store("creating family directory entry", err)
	}
	return entry.ID, entry.TotalMembers, nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.ErrNotFound
	}
	return parsed, nil
}

func (s *service) Get(id string) (*Entry, error) {
	entryID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	entry, err := s.repo.FindByID(entryID)
	if err != nil {
		return nil, apperror.Store("retrieving family directory entry", err)
	}
	return entry, nil
}

func (s *service) List(f Filter, offset, limit int) ([]Entry, int64, error) {
	entries, total, err := s.repo.Find(f, offset, limit)
	if err != nil {
		return nil, 0, apperror.Store("listing family directories", err)
	}
	return entries, total, nil
}

func (s *service) Update(id string, in UpdateInput) error {
	entryID, err := parseID(id)
	if err != nil {
		return err
	}
	fields, err := UpdateSet(&in)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return apperror.Validation("body", "no fields provided for update")
	}

	matched, err := s.repo.UpdateFields(entryID, fields)
	if err != nil {
		return apperror.Store("updating family directory entry", err)
	}
	if !matched {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *service) Delete(id string) error {
	entryID, err := parseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.repo.Delete(entryID)
	if err != nil {
		return apperror.Store("deleting family directory entry", err)
	}
	if !deleted {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *service) TotalPopulation() (int64, error) {
	total, err := s.repo.TotalPopulation()
	if err != nil {
		return 0, apperror.Store("calculating total population", err)
	}
	return total, nil
}

func (s *service) CasteStats() (*CasteStatsResult, error) {
	rows, err := s.repo.CasteRows()
	if err != nil {
		return nil, apperror.Store("retrieving caste statistics", err)
	}

	stats, families, population := computeCasteStats(rows)
	return &CasteStatsResult{
		Stats:           stats,
		TotalFamilies:   families,
		TotalPopulation: population,
	}, nil
}
