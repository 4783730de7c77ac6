package applicationstore

import (
	"workvera-backend/lib/access"
	"workvera-backend/models"
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(scope access.Scope, id string) (rec *dbmodels.Application, err error)
	Exists(userID, jobPostID string) (bool, error)
	// UpdateStatus is a compare-and-set on the current status; false means the row changed meanwhile.
	UpdateStatus(id string, from, to models.ApplicationStatus) (updated bool, err error)
	Delete(id string) error
	ListCount(scope access.Scope, filter dbmodels.ApplicationFilter) (count int64, err error)
	List(scope access.Scope, filter dbmodels.ApplicationFilter, page, limit int) (list []dbmodels.Application, err error)
	ListByJob(jobPostID string) (list []dbmodels.Application, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(scope access.Scope, id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("applications.id = ?", id)
	AddScope(i.db, tx, scope)
	err := tx.
		Preload("User").
		Preload("JobPost").
		Preload("JobPost.Employer").
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

func (i impl) Exists(userID, jobPostID string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("user_id = ? AND job_post_id = ?", userID, jobPostID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) UpdateStatus(id string, from, to models.ApplicationStatus) (bool, error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Application{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) ListCount(scope access.Scope, filter dbmodels.ApplicationFilter) (count int64, err error) {
	tx := i.db.Model(&dbmodels.Application{})
	AddScope(i.db, tx, scope)
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		log.WithError(err).Error("failed to count applications")
		return 0, errors.New("failed to count applications")
	}
	return count, nil
}

func (i impl) List(scope access.Scope, filter dbmodels.ApplicationFilter, page, limit int) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.Model(&dbmodels.Application{})
	AddScope(i.db, tx, scope)
	i.addFilter(tx, filter)
	offset := (page - 1) * limit
	err = tx.
		Order("applications.created_at desc").
		Limit(limit).Offset(offset).
		Preload("User").
		Preload("JobPost").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByJob(jobPostID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("job_post_id = ?", jobPostID).
		Order("created_at").
		Preload("User").
		Preload("JobPost").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// AddScope narrows an applications query to the visibility scope.
func AddScope(db *gorm.DB, tx *gorm.DB, scope access.Scope) {
	if scope.None {
		tx.Where("1 = 0")
		return
	}
	if scope.ApplicantID != "" {
		tx.Where("applications.user_id = ?", scope.ApplicantID)
	}
	if scope.EmployerID != "" {
		tx.Where("applications.job_post_id IN (?)",
			db.Model(&dbmodels.JobPost{}).Select("id").Where("employer_id = ?", scope.EmployerID))
	}
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicationFilter) {
	if filter.JobPostID != "" {
		tx.Where("applications.job_post_id = ?", filter.JobPostID)
	}
	if filter.Status != "" {
		tx.Where("applications.status = ?", filter.Status)
	}
}
