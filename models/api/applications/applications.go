package applicationsapimodels

import (
	"time"
	"workvera-backend/models"
	apimodels "workvera-backend/models/api"
	dbmodels "workvera-backend/models/db"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

func (r ApplyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CoverLetter, validation.Length(0, 10000)),
	)
}

// StatusChangeRequest is checked by the transition validator so permission comes before vocabulary.
type StatusChangeRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

type ApplicationFilter struct {
	JobID  string `query:"job_id"`
	Status string `query:"status"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

func (r ApplicationFilter) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.JobID, is.UUID),
		validation.Field(&r.Status, validation.By(func(interface{}) error {
			if r.Status == "" {
				return nil
			}
			return models.ApplicationStatus(r.Status).Validate()
		})),
	)
}

func (r ApplicationFilter) Paging() apimodels.Pagination {
	return apimodels.Pagination{Page: r.Page, Limit: r.Limit}
}

func (r ApplicationFilter) ToDB() dbmodels.ApplicationFilter {
	return dbmodels.ApplicationFilter{JobPostID: r.JobID, Status: models.ApplicationStatus(r.Status)}
}

type ApplicationView struct {
	ID             string                     `json:"id"`
	UserID         string                     `json:"user_id"`
	ApplicantName  string                     `json:"applicant_name"`
	ApplicantEmail string                     `json:"applicant_email"`
	JobPostID      string                     `json:"job_post_id"`
	JobTitle       string                     `json:"job_title"`
	Status         models.ApplicationStatus   `json:"status"`
	StatusName     string                     `json:"status_name"`
	NextStatuses   []models.ApplicationStatus `json:"next_statuses"`
	CoverLetter    string                     `json:"cover_letter"`
	AppliedAt      time.Time                  `json:"applied_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ID:           rec.ID,
		UserID:       rec.UserID,
		JobPostID:    rec.JobPostID,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		NextStatuses: rec.Status.NextStatuses(),
		CoverLetter:  rec.CoverLetter,
		AppliedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	if rec.User != nil {
		result.ApplicantName = rec.User.Name
		result.ApplicantEmail = rec.User.Email
	}
	if rec.JobPost != nil {
		result.JobTitle = rec.JobPost.Title
	}
	return result
}
