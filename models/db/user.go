package dbmodels

import (
	"time"
	"workvera-backend/models"
)

type User struct {
	BaseModel
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Password  string          `gorm:"type:varchar(128)"`
	Name      string          `gorm:"type:varchar(255)"`
	Role      models.UserRole `gorm:"type:varchar(20);index"`
	IsActive  bool            `gorm:"default:true"`
	LastLogin *time.Time
	Profile   *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Profile struct {
	BaseModel
	UserID           string  `gorm:"type:uuid;uniqueIndex"`
	ResumeFileID     *string `gorm:"type:uuid"`
	VideoPitchFileID *string `gorm:"type:uuid"`
	CareerGapYears   int
	Bio              string
	LinkedinURL      string `gorm:"type:varchar(255)"`
	GithubURL        string `gorm:"type:varchar(255)"`
}

type UserFilter struct {
	Role     models.UserRole
	IsActive *bool
}
