package communityhandler

import (
	"fmt"
	"sort"
	"testing"
	"time"
	"workvera-backend/lib/access"
	"workvera-backend/lib/utils/app-error"
	"workvera-backend/models"
	apimodels "workvera-backend/models/api"
	communityapimodels "workvera-backend/models/api/community"
	dbmodels "workvera-backend/models/db"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakePosts struct {
	seq  int
	rows map[string]dbmodels.Post
}

func (f *fakePosts) Create(rec dbmodels.Post) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("p%d", f.seq)
	rec.CreatedAt = epoch.Add(time.Duration(f.seq) * time.Minute)
	f.rows[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakePosts) GetByID(id string) (*dbmodels.Post, error) {
	rec, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakePosts) Update(id string, updMap map[string]interface{}) error {
	rec := f.rows[id]
	if v, ok := updMap["title"]; ok {
		rec.Title = v.(string)
	}
	if v, ok := updMap["content"]; ok {
		rec.Content = v.(string)
	}
	f.rows[id] = rec
	return nil
}

func (f *fakePosts) Delete(id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakePosts) ListCount() (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakePosts) List(page, limit int) ([]dbmodels.Post, error) {
	list := []dbmodels.Post{}
	for _, row := range f.rows {
		list = append(list, row)
	}
	sort.Slice(list, func(a, b int) bool { return list[a].CreatedAt.After(list[b].CreatedAt) })
	return list, nil
}

type fakeComments struct {
	seq  int
	rows map[string]dbmodels.Comment
}

func (f *fakeComments) Create(rec dbmodels.Comment) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("c%d", f.seq)
	rec.CreatedAt = epoch.Add(time.Duration(f.seq) * time.Minute)
	f.rows[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeComments) GetByID(id string) (*dbmodels.Comment, error) {
	rec, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeComments) UpdateContent(id, content string) error {
	rec := f.rows[id]
	rec.Content = content
	f.rows[id] = rec
	return nil
}

// Delete cascades to replies the way the foreign key does.
func (f *fakeComments) Delete(id string) error {
	delete(f.rows, id)
	for childID, row := range f.rows {
		if row.ParentCommentID != nil && *row.ParentCommentID == id {
			_ = f.Delete(childID)
		}
	}
	return nil
}

func (f *fakeComments) ListByPost(postID string) ([]dbmodels.Comment, error) {
	list := []dbmodels.Comment{}
	for _, row := range f.rows {
		if row.PostID == postID {
			list = append(list, row)
		}
	}
	sort.Slice(list, func(a, b int) bool { return list[a].CreatedAt.Before(list[b].CreatedAt) })
	return list, nil
}

func (f *fakeComments) CountByPosts(postIDs []string) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, row := range f.rows {
		counts[row.PostID]++
	}
	return counts, nil
}

var (
	alice = access.Actor{ID: "u1", Role: models.RoleSeeker, IsActive: true}
	bob   = access.Actor{ID: "u2", Role: models.RoleEmployer, IsActive: true}
	root  = access.Actor{ID: "u3", Role: models.RoleAdmin, IsActive: true}
)

func newFixture() (*fakeComments, Provider) {
	comments := &fakeComments{rows: map[string]dbmodels.Comment{}}
	return comments, NewInstance(&fakePosts{rows: map[string]dbmodels.Post{}}, comments)
}

func TestPosts(t *testing.T) {
	_, handler := newFixture()
	first, err := handler.CreatePost(alice, communityapimodels.PostData{Title: "Back to work", Content: "after 3 years"})
	require.NoError(t, err)
	second, err := handler.CreatePost(bob, communityapimodels.PostData{Title: "We hire", Content: "returners welcome"})
	require.NoError(t, err)

	t.Run(`anonymous cannot post`, func(t *testing.T) {
		_, err := handler.CreatePost(access.Anonymous(), communityapimodels.PostData{Title: "x", Content: "y"})
		require.True(t, apperror.Is(err, apperror.KindPermissionDenied))
	})
	t.Run(`newest first with comment counts`, func(t *testing.T) {
		_, err := handler.CreateComment(bob, first.ID, communityapimodels.CommentData{Content: "welcome"})
		require.NoError(t, err)
		list, count, err := handler.ListPosts(apimodels.Pagination{})
		require.NoError(t, err)
		require.Equal(t, int64(2), count)
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)
		require.Equal(t, int64(1), list[1].CommentsCount)
	})
	t.Run(`only the author edits`, func(t *testing.T) {
		title := "edited"
		_, err := handler.PatchPost(bob, first.ID, communityapimodels.PostPatch{Title: &title})
		require.True(t, apperror.Is(err, apperror.KindPermissionDenied))
		_, err = handler.PatchPost(root, first.ID, communityapimodels.PostPatch{Title: &title})
		require.True(t, apperror.Is(err, apperror.KindPermissionDenied))

		view, err := handler.PatchPost(alice, first.ID, communityapimodels.PostPatch{Title: &title})
		require.NoError(t, err)
		require.Equal(t, "edited", view.Title)
		require.Equal(t, "after 3 years", view.Content)

		view, err = handler.UpdatePost(alice, first.ID, communityapimodels.PostData{Title: "full", Content: "replaced"})
		require.NoError(t, err)
		require.Equal(t, "replaced", view.Content)
	})
	t.Run(`delete`, func(t *testing.T) {
		require.True(t, apperror.Is(handler.DeletePost(alice, second.ID), apperror.KindPermissionDenied))
		require.NoError(t, handler.DeletePost(bob, second.ID))
		_, err := handler.GetPost(second.ID)
		require.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestComments(t *testing.T) {
	comments, handler := newFixture()
	post, err := handler.CreatePost(alice, communityapimodels.PostData{Title: "a", Content: "b"})
	require.NoError(t, err)
	otherPost, err := handler.CreatePost(alice, communityapimodels.PostData{Title: "c", Content: "d"})
	require.NoError(t, err)

	top, err := handler.CreateComment(bob, post.ID, communityapimodels.CommentData{Content: "top"})
	require.NoError(t, err)
	reply, err := handler.CreateComment(alice, post.ID, communityapimodels.CommentData{Content: "reply", ParentComment: &top.ID})
	require.NoError(t, err)
	_, err = handler.CreateComment(bob, post.ID, communityapimodels.CommentData{Content: "nested", ParentComment: &reply.ID})
	require.NoError(t, err)
	_, err = handler.CreateComment(alice, post.ID, communityapimodels.CommentData{Content: "second top"})
	require.NoError(t, err)

	t.Run(`parent must be in the same post`, func(t *testing.T) {
		_, err := handler.CreateComment(alice, otherPost.ID, communityapimodels.CommentData{Content: "x", ParentComment: &top.ID})
		require.True(t, apperror.Is(err, apperror.KindValidation))
		missing := "c404"
		_, err = handler.CreateComment(alice, post.ID, communityapimodels.CommentData{Content: "x", ParentComment: &missing})
		require.True(t, apperror.Is(err, apperror.KindValidation))
	})
	t.Run(`unknown post`, func(t *testing.T) {
		_, err := handler.CreateComment(alice, "p404", communityapimodels.CommentData{Content: "x"})
		require.True(t, apperror.Is(err, apperror.KindNotFound))
		_, err = handler.ListComments("p404")
		require.True(t, apperror.Is(err, apperror.KindNotFound))
	})
	t.Run(`nested tree`, func(t *testing.T) {
		tree, err := handler.ListComments(post.ID)
		require.NoError(t, err)
		require.Len(t, tree, 2)
		require.Equal(t, "top", tree[0].Content)
		require.Equal(t, "second top", tree[1].Content)
		require.Len(t, tree[0].Replies, 1)
		require.Equal(t, "reply", tree[0].Replies[0].Content)
		require.Len(t, tree[0].Replies[0].Replies, 1)
		require.Equal(t, "nested", tree[0].Replies[0].Replies[0].Content)
	})
	t.Run(`only the author edits`, func(t *testing.T) {
		_, err := handler.UpdateComment(alice, top.ID, communityapimodels.CommentUpdate{Content: "hijack"})
		require.True(t, apperror.Is(err, apperror.KindPermissionDenied))
		view, err := handler.UpdateComment(bob, top.ID, communityapimodels.CommentUpdate{Content: "edited"})
		require.NoError(t, err)
		require.Equal(t, "edited", view.Content)
	})
	t.Run(`delete removes the reply subtree`, func(t *testing.T) {
		require.True(t, apperror.Is(handler.DeleteComment(alice, top.ID), apperror.KindPermissionDenied))
		require.NoError(t, handler.DeleteComment(bob, top.ID))
		require.Len(t, comments.rows, 1)
		tree, err := handler.ListComments(post.ID)
		require.NoError(t, err)
		require.Len(t, tree, 1)
		require.Equal(t, "second top", tree[0].Content)
	})
}
