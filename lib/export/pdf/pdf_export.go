package pdfexport

import (
	"bytes"
	"html/template"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// ApplicationSummary is the data printed on an application sheet.
type ApplicationSummary struct {
	ApplicantName  string
	ApplicantEmail string
	JobTitle       string
	EmployerName   string
	Status         string
	AppliedAt      time.Time
	UpdatedAt      time.Time
	CoverLetter    string
}

const summaryTemplate = `<b>Applicant:</b> {{.ApplicantName}}<br>` +
	`<b>Email:</b> {{.ApplicantEmail}}<br>` +
	`<b>Job posting:</b> {{.JobTitle}}<br>` +
	`<b>Employer:</b> {{.EmployerName}}<br>` +
	`<b>Status:</b> {{.Status}}<br>` +
	`<b>Applied at:</b> {{.AppliedAt.Format "02.01.2006 15:04"}}<br>` +
	`<b>Updated at:</b> {{.UpdatedAt.Format "02.01.2006 15:04"}}<br>`

var summaryTpl = template.Must(template.New("application_summary").Parse(summaryTemplate))

func GenerateApplicationSummary(data ApplicationSummary) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateApplicationSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Application summary"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 12)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = summaryTpl.Execute(buf, data); err != nil {
		return nil, err
	}
	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt*1.5, tr(buf.String()))

	if data.CoverLetter != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr("Cover letter"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(data.CoverLetter), "", "L", false)
	}

	out := new(bytes.Buffer)
	if err = pdf.Output(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
