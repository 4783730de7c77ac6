package skillstore

import (
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Skill) (id string, err error)
	GetByID(id string) (rec *dbmodels.Skill, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Skill, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Skill) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Skill, error) {
	rec := dbmodels.Skill{}
	err := i.db.
		Model(&dbmodels.Skill{}).
		Where("id = ?", id).
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
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Skill{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Skill{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List() (list []dbmodels.Skill, err error) {
	list = []dbmodels.Skill{}
	err = i.db.
		Model(&dbmodels.Skill{}).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
