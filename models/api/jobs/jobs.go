package jobsapimodels

import (
	"strings"
	"time"
	apimodels "workvera-backend/models/api"
	dbmodels "workvera-backend/models/db"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type JobPostData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SkillTags   []string `json:"skill_tags"`
	GapFriendly bool     `json:"gap_friendly"`
	Location    string   `json:"location"`
	JobType     string   `json:"job_type"`
}

func (r JobPostData) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.SkillTags, validation.Each(validation.Required, validation.Length(1, 100))),
		validation.Field(&r.Location, validation.Length(0, 150)),
		validation.Field(&r.JobType, validation.Length(0, 50)),
	)
}

func (r JobPostData) ToDB(employerID string) dbmodels.JobPost {
	return dbmodels.JobPost{
		EmployerID:  employerID,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		SkillTags:   dbSkillTags(r.SkillTags),
		GapFriendly: r.GapFriendly,
		Location:    r.Location,
		JobType:     r.JobType,
		IsActive:    true,
	}
}

// UpdateMap returns the columns a full update replaces.
func (r JobPostData) UpdateMap() map[string]interface{} {
	return map[string]interface{}{
		"title":        strings.TrimSpace(r.Title),
		"description":  r.Description,
		"skill_tags":   dbSkillTags(r.SkillTags),
		"gap_friendly": r.GapFriendly,
		"location":     r.Location,
		"job_type":     r.JobType,
	}
}

// JobPostPatch carries only the fields present in the request.
type JobPostPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	SkillTags   *[]string `json:"skill_tags"`
	GapFriendly *bool     `json:"gap_friendly"`
	Location    *string   `json:"location"`
	JobType     *string   `json:"job_type"`
	IsActive    *bool     `json:"is_active"`
}

func (r JobPostPatch) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.SkillTags, validation.By(func(interface{}) error {
			if r.SkillTags == nil {
				return nil
			}
			return validation.Validate(*r.SkillTags, validation.Each(validation.Required, validation.Length(1, 100)))
		})),
		validation.Field(&r.Location, validation.Length(0, 150)),
		validation.Field(&r.JobType, validation.Length(0, 50)),
	)
}

func (r JobPostPatch) UpdateMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.Title != nil {
		updMap["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		updMap["description"] = *r.Description
	}
	if r.SkillTags != nil {
		updMap["skill_tags"] = dbSkillTags(*r.SkillTags)
	}
	if r.GapFriendly != nil {
		updMap["gap_friendly"] = *r.GapFriendly
	}
	if r.Location != nil {
		updMap["location"] = *r.Location
	}
	if r.JobType != nil {
		updMap["job_type"] = *r.JobType
	}
	if r.IsActive != nil {
		updMap["is_active"] = *r.IsActive
	}
	return updMap
}

type JobPostView struct {
	ID           string    `json:"id"`
	EmployerID   string    `json:"employer_id"`
	EmployerName string    `json:"employer_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	SkillTags    []string  `json:"skill_tags"`
	GapFriendly  bool      `json:"gap_friendly"`
	Location     string    `json:"location"`
	JobType      string    `json:"job_type"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func JobPostConvert(rec dbmodels.JobPost) JobPostView {
	result := JobPostView{
		ID:          rec.ID,
		EmployerID:  rec.EmployerID,
		Title:       rec.Title,
		Description: rec.Description,
		SkillTags:   []string(rec.SkillTags),
		GapFriendly: rec.GapFriendly,
		Location:    rec.Location,
		JobType:     rec.JobType,
		IsActive:    rec.IsActive,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if result.SkillTags == nil {
		result.SkillTags = []string{}
	}
	if rec.Employer != nil {
		result.EmployerName = rec.Employer.Name
	}
	return result
}

type JobPostFilter struct {
	Title        string `query:"title"`
	Description  string `query:"description"`
	SkillTags    string `query:"skill_tags"`
	Location     string `query:"location"`
	JobType      string `query:"job_type"`
	JobTypeExact string `query:"job_type_exact"`
	GapFriendly  *bool  `query:"gap_friendly"`
	EmployerName string `query:"employer_name"`
	Page         int    `query:"page"`
	Limit        int    `query:"limit"`
}

func (r JobPostFilter) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validation.Min(0)),
		validation.Field(&r.Limit, validation.Min(0)),
	)
}

func (r JobPostFilter) Paging() apimodels.Pagination {
	return apimodels.Pagination{Page: r.Page, Limit: r.Limit}
}

func (r JobPostFilter) ToDB() dbmodels.JobPostFilter {
	return dbmodels.JobPostFilter{
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		SkillTags:    strings.TrimSpace(r.SkillTags),
		Location:     strings.TrimSpace(r.Location),
		JobType:      strings.TrimSpace(r.JobType),
		JobTypeExact: strings.TrimSpace(r.JobTypeExact),
		GapFriendly:  r.GapFriendly,
		EmployerName: strings.TrimSpace(r.EmployerName),
	}
}
