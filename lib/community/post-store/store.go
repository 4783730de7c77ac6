package poststore

import (
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Post) (id string, err error)
	GetByID(id string) (rec *dbmodels.Post, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount() (count int64, err error)
	List(page, limit int) (list []dbmodels.Post, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Post) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Post, error) {
	rec := dbmodels.Post{}
	err := i.db.
		Model(&dbmodels.Post{}).
		Where("id = ?", id).
		Preload("Author").
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
		Model(&dbmodels.Post{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Post{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) ListCount() (count int64, err error) {
	err = i.db.Model(&dbmodels.Post{}).Count(&count).Error
	if err != nil {
		log.WithError(err).Error("failed to count posts")
		return 0, errors.New("failed to count posts")
	}
	return count, nil
}

func (i impl) List(page, limit int) (list []dbmodels.Post, err error) {
	list = []dbmodels.Post{}
	offset := (page - 1) * limit
	err = i.db.
		Model(&dbmodels.Post{}).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Preload("Author").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
