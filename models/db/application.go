package dbmodels

import "workvera-backend/models"

// Application is unique per (user_id, job_post_id); the index backs the duplicate pre-check.
type Application struct {
	BaseModel
	UserID      string                   `gorm:"type:uuid;uniqueIndex:idx_application_user_job"`
	User        *User                    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	JobPostID   string                   `gorm:"type:uuid;uniqueIndex:idx_application_user_job;index"`
	JobPost     *JobPost                 `gorm:"foreignKey:JobPostID;constraint:OnDelete:CASCADE"`
	Status      models.ApplicationStatus `gorm:"type:varchar(20);default:submitted"`
	CoverLetter string                   `gorm:"type:text"`
}

// EmployerID returns the owner of the targeted posting, empty when JobPost was not preloaded.
func (a Application) EmployerID() string {
	if a.JobPost == nil {
		return ""
	}
	return a.JobPost.EmployerID
}

type ApplicationFilter struct {
	JobPostID string
	Status    models.ApplicationStatus
}
