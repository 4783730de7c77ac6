package dbmodels

import "github.com/lib/pq"

type JobPost struct {
	BaseModel
	EmployerID  string         `gorm:"type:uuid;index"`
	Employer    *User          `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE"`
	Title       string         `gorm:"type:varchar(255)"`
	Description string         `gorm:"type:text"`
	SkillTags   pq.StringArray `gorm:"type:text[]"`
	GapFriendly bool           `gorm:"default:false"`
	Location    string         `gorm:"type:varchar(150)"`
	JobType     string         `gorm:"type:varchar(50)"`
	IsActive    bool           `gorm:"default:true;index"`
}

type JobPostFilter struct {
	Title        string
	Description  string
	SkillTags    string
	Location     string
	JobType      string
	JobTypeExact string
	GapFriendly  *bool
	EmployerName string
}
