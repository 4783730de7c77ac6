package skillteststore

import (
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.SkillTest) (id string, err error)
	GetByID(id string) (rec *dbmodels.SkillTest, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(skillID string) (list []dbmodels.SkillTest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SkillTest) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.SkillTest, error) {
	rec := dbmodels.SkillTest{}
	err := i.db.
		Model(&dbmodels.SkillTest{}).
		Where("id = ?", id).
		Preload("Skill").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.SkillTest{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.SkillTest{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

// List returns every test, or only the tests of skillID when it is set.
func (i impl) List(skillID string) (list []dbmodels.SkillTest, err error) {
	list = []dbmodels.SkillTest{}
	tx := i.db.Model(&dbmodels.SkillTest{})
	if skillID != "" {
		tx.Where("skill_id = ?", skillID)
	}
	err = tx.
		Order("title").
		Preload("Skill").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
