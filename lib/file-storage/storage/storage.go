package filesdbstorage

import (
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetByID(ownerID, id string) (rec *dbmodels.FileStorage, err error)
	Delete(ownerID, id string) error
}

type impl struct {
	db *gorm.DB
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(ownerID, id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Model(&dbmodels.FileStorage{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
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

func (i impl) Delete(ownerID, id string) error {
	return i.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&dbmodels.FileStorage{}).
		Error
}
