// Package reports renders directory dumps into downloadable tabular formats.
package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV   = "csv"
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

// DirectoryRow is the flattened export shape of one directory entry.
type DirectoryRow struct {
	ID             string
	FullName       string
	FatherName     string
	CNIC           string
	Gender         string
	Phone          string
	Email          string
	Qualification  string
	Profession     string
	City           string
	District       string
	Province       string
	Country        string
	BloodGroup     string
	Caste          string
	MaritalStatus  string
	MembershipType string
	CreatedAt      string
}

var directoryHeaders = []string{
	"ID", "Full Name", "Father Name", "CNIC", "Gender", "Phone", "Email",
	"Qualification", "Profession", "City", "District", "Province", "Country",
	"Blood Group", "Caste", "Marital Status", "Membership Type", "Created At",
}

func (r DirectoryRow) values() []string {
	return []string{
		r.ID, r.FullName, r.FatherName, r.CNIC, r.Gender, r.Phone, r.Email,
		r.Qualification, r.Profession, r.City, r.District, r.Province, r.Country,
		r.BloodGroup, r.Caste, r.MaritalStatus, r.MembershipType, r.CreatedAt,
	}
}

// Exporter renders rows into (payload, filename, content type).
type Exporter interface {
	ExportDirectory(format string, rows []DirectoryRow) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) ExportDirectory(format string, rows []DirectoryRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("directory_export_%s.csv", timestamp), "text/csv", nil

	case FormatPDF:
		data, err := e.exportPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("directory_export_%s.pdf", timestamp), "application/pdf", nil

	case FormatExcel:
		data, err := e.exportExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("directory_export_%s.xlsx", timestamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func (e *exporter) exportCSV(rows []DirectoryRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(directoryHeaders); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := writer.Write(row.values()); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportPDF(rows []DirectoryRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Directory Export")
	pdf.Ln(16)

	// Subset of columns that fits a landscape page
	headers := []string{"Full Name", "Father Name", "CNIC", "Phone", "City", "Province", "Caste", "Membership", "Created At"}
	widths := []float64{38, 38, 34, 30, 26, 26, 26, 26, 33}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		values := []string{
			row.FullName, row.FatherName, row.CNIC, row.Phone,
			row.City, row.Province, row.Caste, row.MembershipType, row.CreatedAt,
		}
		for i, v := range values {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportExcel(rows []DirectoryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Directory"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, h := range directoryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		for col, v := range row.values() {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
