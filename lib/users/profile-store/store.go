package profilestore

import (
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByUserID(userID string) (rec *dbmodels.Profile, err error)
	Update(userID string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByUserID(userID string) (*dbmodels.Profile, error) {
	rec := dbmodels.Profile{}
	err := i.db.
		Model(&dbmodels.Profile{}).
		Where("user_id = ?", userID).
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

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Profile{}).
		Where("user_id = ?", userID).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("profile not found")
	}
	return nil
}
