package communityhandler

import (
	"workvera-backend/db"
	"workvera-backend/lib/access"
	commentstore "workvera-backend/lib/community/comment-store"
	poststore "workvera-backend/lib/community/post-store"
	"workvera-backend/lib/utils/app-error"
	initchecker "workvera-backend/lib/utils/init-checker"
	apimodels "workvera-backend/models/api"
	communityapimodels "workvera-backend/models/api/community"
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreatePost(actor access.Actor, data communityapimodels.PostData) (communityapimodels.PostView, error)
	GetPost(id string) (communityapimodels.PostView, error)
	ListPosts(paging apimodels.Pagination) (list []communityapimodels.PostView, rowCount int64, err error)
	UpdatePost(actor access.Actor, id string, data communityapimodels.PostData) (communityapimodels.PostView, error)
	PatchPost(actor access.Actor, id string, data communityapimodels.PostPatch) (communityapimodels.PostView, error)
	DeletePost(actor access.Actor, id string) error

	CreateComment(actor access.Actor, postID string, data communityapimodels.CommentData) (communityapimodels.CommentView, error)
	GetComment(id string) (communityapimodels.CommentView, error)
	ListComments(postID string) ([]communityapimodels.CommentView, error)
	UpdateComment(actor access.Actor, id string, data communityapimodels.CommentUpdate) (communityapimodels.CommentView, error)
	DeleteComment(actor access.Actor, id string) error
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db.DB", db.DB)
	Instance = NewInstance(poststore.NewInstance(db.DB), commentstore.NewInstance(db.DB))
}

func NewInstance(posts poststore.Provider, comments commentstore.Provider) Provider {
	return impl{
		posts:    posts,
		comments: comments,
	}
}

type impl struct {
	posts    poststore.Provider
	comments commentstore.Provider
}

func (i impl) CreatePost(actor access.Actor, data communityapimodels.PostData) (communityapimodels.PostView, error) {
	if err := access.Authorize(actor, access.AuthorOwnership(access.ResourcePost, actor.ID), access.ActionCreate); err != nil {
		return communityapimodels.PostView{}, err
	}
	logger := log.WithField("user_id", actor.ID)
	id, err := i.posts.Create(dbmodels.Post{AuthorID: actor.ID, Title: data.Title, Content: data.Content})
	if err != nil {
		logger.WithError(err).Error("failed to create post")
		return communityapimodels.PostView{}, errors.Wrap(err, "failed to create post")
	}
	logger.WithField("rec_id", id).Info("post created")
	return i.GetPost(id)
}

func (i impl) getPost(id string) (*dbmodels.Post, error) {
	rec, err := i.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, access.NotFound(access.ResourcePost)
	}
	return rec, nil
}

func (i impl) GetPost(id string) (communityapimodels.PostView, error) {
	rec, err := i.getPost(id)
	if err != nil {
		return communityapimodels.PostView{}, err
	}
	counts, err := i.comments.CountByPosts([]string{rec.ID})
	if err != nil {
		return communityapimodels.PostView{}, err
	}
	return communityapimodels.PostConvert(dbmodels.PostExt{Post: *rec, CommentsCount: counts[rec.ID]}), nil
}

func (i impl) ListPosts(paging apimodels.Pagination) ([]communityapimodels.PostView, int64, error) {
	rowCount, err := i.posts.ListCount()
	if err != nil {
		return nil, 0, err
	}
	page, limit := paging.GetPage()
	recList, err := i.posts.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]string, 0, len(recList))
	for _, rec := range recList {
		ids = append(ids, rec.ID)
	}
	counts, err := i.comments.CountByPosts(ids)
	if err != nil {
		return nil, 0, err
	}
	result := make([]communityapimodels.PostView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, communityapimodels.PostConvert(dbmodels.PostExt{Post: rec, CommentsCount: counts[rec.ID]}))
	}
	return result, rowCount, nil
}

func (i impl) getPostForWrite(actor access.Actor, id string, action access.Action) (*dbmodels.Post, error) {
	rec, err := i.getPost(id)
	if err != nil {
		return nil, err
	}
	if err = access.Authorize(actor, access.AuthorOwnership(access.ResourcePost, rec.AuthorID), action); err != nil {
		return nil, err
	}
	return rec, nil
}

func (i impl) UpdatePost(actor access.Actor, id string, data communityapimodels.PostData) (communityapimodels.PostView, error) {
	return i.PatchPost(actor, id, communityapimodels.PostPatch{Title: &data.Title, Content: &data.Content})
}

func (i impl) PatchPost(actor access.Actor, id string, data communityapimodels.PostPatch) (communityapimodels.PostView, error) {
	if _, err := i.getPostForWrite(actor, id, access.ActionUpdate); err != nil {
		return communityapimodels.PostView{}, err
	}
	if err := i.posts.Update(id, data.UpdateMap()); err != nil {
		log.WithFields(log.Fields{"user_id": actor.ID, "rec_id": id}).WithError(err).Error("failed to update post")
		return communityapimodels.PostView{}, errors.Wrap(err, "failed to update post")
	}
	return i.GetPost(id)
}

func (i impl) DeletePost(actor access.Actor, id string) error {
	if _, err := i.getPostForWrite(actor, id, access.ActionDelete); err != nil {
		return err
	}
	return i.posts.Delete(id)
}

func (i impl) CreateComment(actor access.Actor, postID string, data communityapimodels.CommentData) (communityapimodels.CommentView, error) {
	if err := access.Authorize(actor, access.AuthorOwnership(access.ResourceComment, actor.ID), access.ActionCreate); err != nil {
		return communityapimodels.CommentView{}, err
	}
	post, err := i.getPost(postID)
	if err != nil {
		return communityapimodels.CommentView{}, err
	}
	if data.ParentComment != nil {
		parent, err := i.comments.GetByID(*data.ParentComment)
		if err != nil {
			return communityapimodels.CommentView{}, err
		}
		if parent == nil || parent.PostID != post.ID {
			return communityapimodels.CommentView{}, apperror.Validation("parent_comment: parent comment must belong to the same post")
		}
	}
	logger := log.WithFields(log.Fields{"user_id": actor.ID, "post_id": post.ID})
	id, err := i.comments.Create(dbmodels.Comment{
		PostID:          post.ID,
		AuthorID:        actor.ID,
		Content:         data.Content,
		ParentCommentID: data.ParentComment,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create comment")
		return communityapimodels.CommentView{}, errors.Wrap(err, "failed to create comment")
	}
	logger.WithField("rec_id", id).Info("comment created")
	return i.GetComment(id)
}

func (i impl) getComment(id string) (*dbmodels.Comment, error) {
	rec, err := i.comments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, access.NotFound(access.ResourceComment)
	}
	return rec, nil
}

func (i impl) GetComment(id string) (communityapimodels.CommentView, error) {
	rec, err := i.getComment(id)
	if err != nil {
		return communityapimodels.CommentView{}, err
	}
	return communityapimodels.CommentConvert(*rec), nil
}

func (i impl) ListComments(postID string) ([]communityapimodels.CommentView, error) {
	if _, err := i.getPost(postID); err != nil {
		return nil, err
	}
	list, err := i.comments.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	return communityapimodels.BuildCommentTree(list), nil
}

func (i impl) UpdateComment(actor access.Actor, id string, data communityapimodels.CommentUpdate) (communityapimodels.CommentView, error) {
	rec, err := i.getComment(id)
	if err != nil {
		return communityapimodels.CommentView{}, err
	}
	if err = access.Authorize(actor, access.AuthorOwnership(access.ResourceComment, rec.AuthorID), access.ActionUpdate); err != nil {
		return communityapimodels.CommentView{}, err
	}
	if err = i.comments.UpdateContent(id, data.Content); err != nil {
		log.WithFields(log.Fields{"user_id": actor.ID, "rec_id": id}).WithError(err).Error("failed to update comment")
		return communityapimodels.CommentView{}, errors.Wrap(err, "failed to update comment")
	}
	return i.GetComment(id)
}

func (i impl) DeleteComment(actor access.Actor, id string) error {
	rec, err := i.getComment(id)
	if err != nil {
		return err
	}
	if err = access.Authorize(actor, access.AuthorOwnership(access.ResourceComment, rec.AuthorID), access.ActionDelete); err != nil {
		return err
	}
	return i.comments.Delete(id)
}
