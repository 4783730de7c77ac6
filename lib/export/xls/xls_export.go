package xlsexport

import (
	"bytes"
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(jobTitle string, list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Applicant", "Email", "Job posting", "Status", "Applied at", "Updated at", "Cover letter"}

func (i impl) ExportApplicationList(jobTitle string, list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		_, err = writeApplicationData(f, sheet, jobTitle, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	if err = f.SetSheetName(sheet, "Applications"); err != nil {
		return nil, errors.Wrap(err, "failed to rename xlsx sheet")
	}
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet, jobTitle string, list []dbmodels.Application, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{"", "", jobTitle, item.Status.ToHuman(), item.CreatedAt.Format("02.01.2006 15:04"), item.UpdatedAt.Format("02.01.2006 15:04"), item.CoverLetter}
		if item.User != nil {
			values[0] = item.User.Name
			values[1] = item.User.Email
		}
		if item.JobPost != nil {
			values[2] = item.JobPost.Title
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
