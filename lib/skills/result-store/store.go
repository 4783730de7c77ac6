package skillresultstore

import (
	"workvera-backend/lib/access"
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.SkillResult) (id string, err error)
	GetByID(scope access.Scope, id string) (rec *dbmodels.SkillResult, err error)
	Exists(userID, skillTestID string) (bool, error)
	ListCount(scope access.Scope) (count int64, err error)
	List(scope access.Scope, page, limit int) (list []dbmodels.SkillResult, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SkillResult) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(scope access.Scope, id string) (*dbmodels.SkillResult, error) {
	rec := dbmodels.SkillResult{}
	tx := i.db.
		Model(&dbmodels.SkillResult{}).
		Where("skill_results.id = ?", id)
	AddScope(tx, scope)
	err := tx.
		Preload("SkillTest").
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

func (i impl) Exists(userID, skillTestID string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.SkillResult{}).
		Where("user_id = ? AND skill_test_id = ?", userID, skillTestID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) ListCount(scope access.Scope) (count int64, err error) {
	tx := i.db.Model(&dbmodels.SkillResult{})
	AddScope(tx, scope)
	err = tx.Count(&count).Error
	if err != nil {
		log.WithError(err).Error("failed to count skill results")
		return 0, errors.New("failed to count skill results")
	}
	return count, nil
}

func (i impl) List(scope access.Scope, page, limit int) (list []dbmodels.SkillResult, err error) {
	list = []dbmodels.SkillResult{}
	tx := i.db.Model(&dbmodels.SkillResult{})
	AddScope(tx, scope)
	offset := (page - 1) * limit
	err = tx.
		Order("skill_results.created_at desc").
		Limit(limit).
		Offset(offset).
		Preload("SkillTest").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// AddScope narrows a skill_results query to the visibility scope.
func AddScope(tx *gorm.DB, scope access.Scope) {
	if scope.None {
		tx.Where("1 = 0")
		return
	}
	if scope.ExamineeID != "" {
		tx.Where("skill_results.user_id = ?", scope.ExamineeID)
	}
}
