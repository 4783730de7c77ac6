package communityapimodels

import (
	"testing"
	dbmodels "workvera-backend/models/db"

	"github.com/stretchr/testify/require"
)

func comment(id string, parent *string) dbmodels.Comment {
	rec := dbmodels.Comment{PostID: "p1", AuthorID: "u1", Content: id, ParentCommentID: parent}
	rec.ID = id
	return rec
}

func ref(id string) *string {
	return &id
}

func TestBuildCommentTree(t *testing.T) {
	t.Run(`nested replies`, func(t *testing.T) {
		tree := BuildCommentTree([]dbmodels.Comment{
			comment("c1", nil),
			comment("c2", ref("c1")),
			comment("c3", ref("c2")),
			comment("c4", nil),
			comment("c5", ref("c1")),
		})
		require.Len(t, tree, 2)
		require.Equal(t, "c1", tree[0].ID)
		require.Len(t, tree[0].Replies, 2)
		require.Equal(t, "c2", tree[0].Replies[0].ID)
		require.Equal(t, "c3", tree[0].Replies[0].Replies[0].ID)
		require.Equal(t, "c5", tree[0].Replies[1].ID)
		require.Equal(t, "c4", tree[1].ID)
		require.Empty(t, tree[1].Replies)
	})
	t.Run(`orphan reply becomes root`, func(t *testing.T) {
		tree := BuildCommentTree([]dbmodels.Comment{comment("c2", ref("missing"))})
		require.Len(t, tree, 1)
		require.Equal(t, "c2", tree[0].ID)
	})
	t.Run(`empty list`, func(t *testing.T) {
		require.Empty(t, BuildCommentTree(nil))
	})
}

func TestCommentDataValidate(t *testing.T) {
	require.NoError(t, CommentData{Content: "hello"}.Validate())
	require.Error(t, CommentData{}.Validate())
	require.Error(t, CommentData{Content: "hi", ParentComment: ref("not-a-uuid")}.Validate())
	require.NoError(t, CommentData{Content: "hi", ParentComment: ref("7f1e5a9c-3a3e-4d7b-9d35-0f7a26a4a0b1")}.Validate())
}
