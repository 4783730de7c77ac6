package commentstore

import (
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Comment) (id string, err error)
	GetByID(id string) (rec *dbmodels.Comment, err error)
	UpdateContent(id, content string) error
	// Delete removes the comment; replies go with it through the parent_comment_id cascade.
	Delete(id string) error
	ListByPost(postID string) (list []dbmodels.Comment, err error)
	CountByPosts(postIDs []string) (counts map[string]int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Comment) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Comment, error) {
	rec := dbmodels.Comment{}
	err := i.db.
		Model(&dbmodels.Comment{}).
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

func (i impl) UpdateContent(id, content string) error {
	return i.db.
		Model(&dbmodels.Comment{}).
		Where("id = ?", id).
		Update("content", content).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Comment{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) ListByPost(postID string) (list []dbmodels.Comment, err error) {
	list = []dbmodels.Comment{}
	err = i.db.
		Model(&dbmodels.Comment{}).
		Where("post_id = ?", postID).
		Order("created_at").
		Preload("Author").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

type postCount struct {
	PostID string
	Count  int64
}

func (i impl) CountByPosts(postIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}
	rows := []postCount{}
	err := i.db.
		Model(&dbmodels.Comment{}).
		Select("post_id, count(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}
