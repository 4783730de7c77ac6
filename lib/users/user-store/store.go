package userstore

import (
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	// CreateWithProfile stores the user and an empty profile in one transaction.
	CreateWithProfile(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	ExistByEmail(email string) (bool, error)
	Update(id string, updMap map[string]interface{}) error
	List(filter dbmodels.UserFilter, page, limit int) (list []dbmodels.User, err error)
	ListCount(filter dbmodels.UserFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateWithProfile(rec dbmodels.User) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&rec).Error; err != nil {
			return err
		}
		profile := dbmodels.Profile{UserID: rec.ID}
		if rec.Profile != nil {
			profile = *rec.Profile
			profile.UserID = rec.ID
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Model(&dbmodels.User{}).
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("lower(email) = lower(?)", email).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.User{}).
		Where("lower(email) = lower(?)", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (i impl) List(filter dbmodels.UserFilter, page, limit int) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	tx := i.db.Model(&dbmodels.User{})
	i.addFilter(tx, filter)
	tx.Order("email").Limit(limit).Offset((page - 1) * limit)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter dbmodels.UserFilter) (count int64, err error) {
	tx := i.db.Model(&dbmodels.User{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}
	return count, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.UserFilter) {
	if filter.Role != "" {
		tx.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		tx.Where("is_active = ?", *filter.IsActive)
	}
}
