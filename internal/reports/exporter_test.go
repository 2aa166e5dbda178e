package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []DirectoryRow {
	return []DirectoryRow{
		{
			ID: "a1", FullName: "Muhammad Ali", FatherName: "Ahmed Ali",
			CNIC: "12345-1234567-1", Gender: "male", Phone: "+923001234567",
			Email: "ali@example.com", Qualification: "Masters", Profession: "Engineer",
			City: "Lahore", District: "Lahore", Province: "Punjab", Country: "Pakistan",
			BloodGroup: "B+", Caste: "Arain", MaritalStatus: "married",
			MembershipType: "member", CreatedAt: "2026-01-15T10:00:00Z",
		},
		{
			ID: "b2", FullName: "Fatima Noor", FatherName: "Noor Khan",
			CNIC: "54321-7654321-2", Gender: "female", Phone: "+923219876543",
			Email: "fatima@example.com", Qualification: "Bachelors", Profession: "Teacher",
			City: "Karachi", District: "Karachi", Province: "Sindh", Country: "Pakistan",
			Caste: "Arain", MaritalStatus: "single", MembershipType: "volunteer",
			CreatedAt: "2026-02-20T12:30:00Z",
		},
	}
}

func TestExportCSV(t *testing.T) {
	exp := NewExporter()

	data, filename, contentType, err := exp.ExportDirectory(FormatCSV, sampleRows())
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.HasPrefix(filename, "directory_export_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two rows")
	assert.Equal(t, directoryHeaders, records[0])
	assert.Equal(t, "Muhammad Ali", records[1][1])
	assert.Equal(t, "Fatima Noor", records[2][1])
}

func TestExportCSVEmpty(t *testing.T) {
	exp := NewExporter()

	data, _, _, err := exp.ExportDirectory(FormatCSV, nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func TestExportPDF(t *testing.T) {
	exp := NewExporter()

	data, filename, contentType, err := exp.ExportDirectory(FormatPDF, sampleRows())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "payload is a PDF document")
}

func TestExportExcel(t *testing.T) {
	exp := NewExporter()

	data, filename, contentType, err := exp.ExportDirectory(FormatExcel, sampleRows())
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	assert.NotEmpty(t, data)
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestExportUnsupportedFormat(t *testing.T) {
	exp := NewExporter()

	_, _, _, err := exp.ExportDirectory("xml", sampleRows())
	assert.Error(t, err)
}
