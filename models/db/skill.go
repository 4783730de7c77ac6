package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type Skill struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex"`
	Description string
}

type SkillTest struct {
	BaseModel
	Title       string  `gorm:"type:varchar(255)"`
	Description string  `gorm:"type:text"`
	SkillID     *string `gorm:"type:uuid"`
	Skill       *Skill  `gorm:"foreignKey:SkillID;constraint:OnDelete:SET NULL"`
}

// SkillResult is unique per (user_id, skill_test_id) and never updated once stored.
type SkillResult struct {
	BaseModel
	UserID      string        `gorm:"type:uuid;uniqueIndex:idx_skill_result_user_test"`
	User        *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SkillTestID string        `gorm:"type:uuid;uniqueIndex:idx_skill_result_user_test"`
	SkillTest   *SkillTest    `gorm:"foreignKey:SkillTestID;constraint:OnDelete:CASCADE"`
	Score       float64       `gorm:"not null"`
	Details     ResultDetails `gorm:"type:jsonb"`
}

// ResultDetails is an opaque payload supplied by the test runner.
type ResultDetails map[string]interface{}

func (j ResultDetails) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ResultDetails) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported details type %T", value)
	}
	return json.Unmarshal(raw, j)
}
