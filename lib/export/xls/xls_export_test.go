package xlsexport

import (
	"testing"
	"time"
	"workvera-backend/models"
	dbmodels "workvera-backend/models/db"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportApplicationList(t *testing.T) {
	rec := dbmodels.Application{
		UserID:      "s1",
		User:        &dbmodels.User{Name: "Sam", Email: "sam@example.com"},
		JobPostID:   "j1",
		Status:      models.ApplicationStatusShortlisted,
		CoverLetter: "hello",
	}
	rec.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rec.UpdatedAt = rec.CreatedAt

	buf, err := impl{}.ExportApplicationList("Backend", []dbmodels.Application{rec})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Applications", "A1")
	require.NoError(t, err)
	require.Equal(t, "Applicant", header)

	rows, err := f.GetRows("Applications")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"Sam", "sam@example.com", "Backend", "Shortlisted", "01.05.2024 10:00", "01.05.2024 10:00", "hello"}, rows[1])
}

func TestExportEmptyList(t *testing.T) {
	buf, err := impl{}.ExportApplicationList("Backend", nil)
	require.NoError(t, err)
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Applications")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
