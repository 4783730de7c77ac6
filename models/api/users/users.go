package usersapimodels

import (
	"time"
	"workvera-backend/models"
	apimodels "workvera-backend/models/api"
	dbmodels "workvera-backend/models/db"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
)

type UserView struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	LastLogin *time.Time      `json:"last_login,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:        rec.ID,
		Email:     rec.Email,
		Name:      rec.Name,
		Role:      rec.Role,
		IsActive:  rec.IsActive,
		LastLogin: rec.LastLogin,
		CreatedAt: rec.CreatedAt,
	}
}

type UserFilter struct {
	Role     string `query:"role"`
	IsActive *bool  `query:"is_active"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

func (r UserFilter) Validate() error {
	if r.Role == "" {
		return nil
	}
	if _, err := models.ParseUserRole(r.Role); err != nil {
		return errors.New("role must be one of: seeker, employer, admin")
	}
	return nil
}

func (r UserFilter) Paging() apimodels.Pagination {
	return apimodels.Pagination{Page: r.Page, Limit: r.Limit}
}

func (r UserFilter) ToDB() dbmodels.UserFilter {
	return dbmodels.UserFilter{Role: models.UserRole(r.Role), IsActive: r.IsActive}
}

type ProfileData struct {
	Bio            string `json:"bio"`
	CareerGapYears int    `json:"career_gap_years"`
	LinkedinURL    string `json:"linkedin_url"`
	GithubURL      string `json:"github_url"`
}

func (r ProfileData) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Bio, validation.Length(0, 5000)),
		validation.Field(&r.CareerGapYears, validation.Min(0), validation.Max(60)),
		validation.Field(&r.LinkedinURL, is.URL, validation.Length(0, 255)),
		validation.Field(&r.GithubURL, is.URL, validation.Length(0, 255)),
	)
}

type ProfileView struct {
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Bio            string    `json:"bio"`
	CareerGapYears int       `json:"career_gap_years"`
	LinkedinURL    string    `json:"linkedin_url"`
	GithubURL      string    `json:"github_url"`
	HasResume      bool      `json:"has_resume"`
	HasVideoPitch  bool      `json:"has_video_pitch"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ProfileConvert(user dbmodels.User, rec dbmodels.Profile) ProfileView {
	return ProfileView{
		UserID:         user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           string(user.Role),
		Bio:            rec.Bio,
		CareerGapYears: rec.CareerGapYears,
		LinkedinURL:    rec.LinkedinURL,
		GithubURL:      rec.GithubURL,
		HasResume:      rec.ResumeFileID != nil,
		HasVideoPitch:  rec.VideoPitchFileID != nil,
		UpdatedAt:      rec.UpdatedAt,
	}
}
