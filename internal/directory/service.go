package directory

import (
	"github.com/google/uuid"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/reports"
)

type Service interface {
	Create(in CreateInput) (uuid.UUID, error)
	Get(id string) (*Entry, error)
	List(f Filter, offset, limit int) ([]Entry, int64, error)
	Update(id string, in UpdateInput) error
	Delete(id string) error
	Count() (int64, error)
	CommunityStrength() (int64, error)
	Export(format string) ([]byte, string, string, error)
}

type service struct {
	repo     Repository
	exporter reports.Exporter
}

func NewService(repo Repository, exporter reports.Exporter) Service {
	return &service{repo: repo, exporter: exporter}
}

func (s *service) Create(in CreateInput) (uuid.UUID, error) {
	entry, err := NewEntry(&in)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.repo.Create(entry); err != nil {
		return uuid.Nil, apperror.Store("creating directory entry", err)
	}
	return entry.ID, nil
}

// parseID maps malformed identifiers to NotFound so no decoding error
// leaks through the API.
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
		return nil, apperror.Store("retrieving directory entry", err)
	}
	return entry, nil
}

func (s *service) List(f Filter, offset, limit int) ([]Entry, int64, error) {
	entries, total, err := s.repo.Find(f, offset, limit)
	if err != nil {
		return nil, 0, apperror.Store("listing directory entries", err)
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
		return apperror.Store("updating directory entry", err)
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
		return apperror.Store("deleting directory entry", err)
	}
	if !deleted {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *service) Count() (int64, error) {
	total, err := s.repo.Count()
	if err != nil {
		return 0, apperror.Store("counting directory entries", err)
	}
	return total, nil
}

func (s *service) CommunityStrength() (int64, error) {
	total, err := s.repo.CommunityStrength()
	if err != nil {
		return 0, apperror.Store("calculating community strength", err)
	}
	return total, nil
}

func (s *service) Export(format string) ([]byte, string, string, error) {
	entries, err := s.repo.All()
	if err != nil {
		return nil, "", "", apperror.Store("exporting directory", err)
	}

	rows := make([]reports.DirectoryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, toReportRow(e))
	}

	data, filename, contentType, err := s.exporter.ExportDirectory(format, rows)
	if err != nil {
		return nil, "", "", apperror.Store("exporting directory", err)
	}
	return data, filename, contentType, nil
}

func toReportRow(e Entry) reports.DirectoryRow {
	row := reports.DirectoryRow{
		ID:             e.ID.String(),
		FullName:       e.FullName,
		FatherName:     e.FatherName,
		CNIC:           e.CNIC,
		Gender:         string(e.Gender),
		Phone:          e.Phone,
		Email:          e.Email,
		Qualification:  e.Qualification,
		Profession:     e.Profession,
		City:           e.City,
		District:       e.District,
		Province:       e.Province,
		Country:        e.Country,
		Caste:          e.Caste,
		MaritalStatus:  string(e.MaritalStatus),
		MembershipType: string(e.MembershipType),
		CreatedAt:      e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.BloodGroup != nil {
		row.BloodGroup = string(*e.BloodGroup)
	}
	return row
}
