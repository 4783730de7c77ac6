package jobstore

import (
	"strings"
	"workvera-backend/lib/access"
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.JobPost) (id string, err error)
	GetByID(scope access.Scope, id string) (rec *dbmodels.JobPost, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(scope access.Scope, filter dbmodels.JobPostFilter) (count int64, err error)
	List(scope access.Scope, filter dbmodels.JobPostFilter, page, limit int) (list []dbmodels.JobPost, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobPost) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(scope access.Scope, id string) (*dbmodels.JobPost, error) {
	rec := dbmodels.JobPost{}
	tx := i.db.
		Model(&dbmodels.JobPost{}).
		Where("job_posts.id = ?", id)
	AddScope(tx, scope)
	err := tx.
		Preload("Employer").
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
	tx := i.db.
		Model(&dbmodels.JobPost{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return access.NotFound(access.ResourceJobPost)
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.JobPost{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) ListCount(scope access.Scope, filter dbmodels.JobPostFilter) (count int64, err error) {
	tx := i.db.Model(&dbmodels.JobPost{})
	AddScope(tx, scope)
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		log.WithError(err).Error("failed to count job postings")
		return 0, errors.New("failed to count job postings")
	}
	return count, nil
}

func (i impl) List(scope access.Scope, filter dbmodels.JobPostFilter, page, limit int) (list []dbmodels.JobPost, err error) {
	list = []dbmodels.JobPost{}
	tx := i.db.Model(&dbmodels.JobPost{})
	AddScope(tx, scope)
	i.addFilter(tx, filter)
	tx.Order("job_posts.created_at desc")
	i.setPage(tx, page, limit)
	err = tx.Preload("Employer").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// AddScope narrows a job_posts query to the visibility scope.
func AddScope(tx *gorm.DB, scope access.Scope) {
	if scope.None {
		tx.Where("1 = 0")
		return
	}
	if scope.ActiveOnly {
		tx.Where("job_posts.is_active = ?", true)
	}
	if scope.EmployerID != "" {
		tx.Where("job_posts.employer_id = ?", scope.EmployerID)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// like builds a contains pattern; wildcards in value match literally.
func like(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.JobPostFilter) {
	if filter.Title != "" {
		tx.Where("job_posts.title ILIKE ?", like(filter.Title))
	}
	if filter.Description != "" {
		tx.Where("job_posts.description ILIKE ?", like(filter.Description))
	}
	if filter.SkillTags != "" {
		tx.Where("array_to_string(job_posts.skill_tags, ',') ILIKE ?", like(filter.SkillTags))
	}
	if filter.Location != "" {
		tx.Where("job_posts.location ILIKE ?", like(filter.Location))
	}
	if filter.JobType != "" {
		tx.Where("job_posts.job_type ILIKE ?", like(filter.JobType))
	}
	if filter.JobTypeExact != "" {
		tx.Where("job_posts.job_type = ?", filter.JobTypeExact)
	}
	if filter.GapFriendly != nil {
		tx.Where("job_posts.gap_friendly = ?", *filter.GapFriendly)
	}
	if filter.EmployerName != "" {
		tx.Where("job_posts.employer_id IN (?)", i.db.Model(&dbmodels.User{}).Select("id").Where("name ILIKE ?", like(filter.EmployerName)))
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
