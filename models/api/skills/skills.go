package skillsapimodels

import (
	"math"
	"strings"
	"time"
	dbmodels "workvera-backend/models/db"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
)

type SkillData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r SkillData) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

func (r SkillData) ToDB() dbmodels.Skill {
	return dbmodels.Skill{Name: strings.TrimSpace(r.Name), Description: r.Description}
}

type SkillView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func SkillConvert(rec dbmodels.Skill) SkillView {
	return SkillView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
	}
}

type SkillTestData struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	SkillID     *string `json:"skill_id"`
}

func (r SkillTestData) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.SkillID, validation.NilOrNotEmpty, is.UUID),
	)
}

func (r SkillTestData) ToDB() dbmodels.SkillTest {
	return dbmodels.SkillTest{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		SkillID:     r.SkillID,
	}
}

type SkillTestView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SkillID     *string   `json:"skill_id"`
	SkillName   string    `json:"skill_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func SkillTestConvert(rec dbmodels.SkillTest) SkillTestView {
	result := SkillTestView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		SkillID:     rec.SkillID,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Skill != nil {
		result.SkillName = rec.Skill.Name
	}
	return result
}

type SubmitRequest struct {
	Score   *float64               `json:"score"`
	Details map[string]interface{} `json:"details"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Score, validation.NotNil, validation.By(func(interface{}) error {
			if r.Score == nil {
				return nil
			}
			if math.IsNaN(*r.Score) || math.IsInf(*r.Score, 0) {
				return errors.New("must be a finite number")
			}
			if *r.Score < 0 {
				return errors.New("must be no less than 0")
			}
			return nil
		})),
	)
}

func (r SubmitRequest) ToDB(userID, skillTestID string) dbmodels.SkillResult {
	return dbmodels.SkillResult{
		UserID:      userID,
		SkillTestID: skillTestID,
		Score:       *r.Score,
		Details:     dbmodels.ResultDetails(r.Details),
	}
}

type SkillResultView struct {
	ID             string                 `json:"id"`
	UserID         string                 `json:"user_id"`
	SkillTestID    string                 `json:"skill_test_id"`
	SkillTestTitle string                 `json:"skill_test_title"`
	Score          float64                `json:"score"`
	Details        map[string]interface{} `json:"details"`
	CompletedAt    time.Time              `json:"completed_at"`
}

func SkillResultConvert(rec dbmodels.SkillResult) SkillResultView {
	result := SkillResultView{
		ID:          rec.ID,
		UserID:      rec.UserID,
		SkillTestID: rec.SkillTestID,
		Score:       rec.Score,
		Details:     rec.Details,
		CompletedAt: rec.CreatedAt,
	}
	if rec.SkillTest != nil {
		result.SkillTestTitle = rec.SkillTest.Title
	}
	return result
}
