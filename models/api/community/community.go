package communityapimodels

import (
	"time"
	dbmodels "workvera-backend/models/db"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type PostData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r PostData) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Content, validation.Required),
	)
}

type PostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r PostPatch) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
	)
}

func (r PostPatch) UpdateMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.Title != nil {
		updMap["title"] = *r.Title
	}
	if r.Content != nil {
		updMap["content"] = *r.Content
	}
	return updMap
}

type PostView struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CommentsCount int64     `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func PostConvert(rec dbmodels.PostExt) PostView {
	result := PostView{
		ID:            rec.ID,
		AuthorID:      rec.AuthorID,
		Title:         rec.Title,
		Content:       rec.Content,
		CommentsCount: rec.CommentsCount,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if rec.Author != nil {
		result.AuthorName = rec.Author.Name
	}
	return result
}

type CommentData struct {
	Content       string  `json:"content"`
	ParentComment *string `json:"parent_comment"`
}

func (r CommentData) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required, validation.Length(1, 5000)),
		validation.Field(&r.ParentComment, validation.NilOrNotEmpty, is.UUID),
	)
}

type CommentUpdate struct {
	Content string `json:"content"`
}

func (r CommentUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required, validation.Length(1, 5000)),
	)
}

type CommentView struct {
	ID              string        `json:"id"`
	PostID          string        `json:"post_id"`
	AuthorID        string        `json:"author_id"`
	AuthorName      string        `json:"author_name"`
	Content         string        `json:"content"`
	ParentCommentID *string       `json:"parent_comment"`
	Replies         []CommentView `json:"replies"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func CommentConvert(rec dbmodels.Comment) CommentView {
	result := CommentView{
		ID:              rec.ID,
		PostID:          rec.PostID,
		AuthorID:        rec.AuthorID,
		Content:         rec.Content,
		ParentCommentID: rec.ParentCommentID,
		Replies:         []CommentView{},
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
	if rec.Author != nil {
		result.AuthorName = rec.Author.Name
	}
	return result
}

// BuildCommentTree nests replies under their parents. Input order is preserved at every level;
// comments whose parent is absent from the list become roots.
func BuildCommentTree(list []dbmodels.Comment) []CommentView {
	type node struct {
		view     CommentView
		children []int
	}
	nodes := make([]node, len(list))
	index := make(map[string]int, len(list))
	for n, rec := range list {
		nodes[n] = node{view: CommentConvert(rec)}
		index[rec.ID] = n
	}
	roots := []int{}
	for n, rec := range list {
		if rec.ParentCommentID != nil {
			if parent, ok := index[*rec.ParentCommentID]; ok && parent != n {
				nodes[parent].children = append(nodes[parent].children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	var build func(n int) CommentView
	build = func(n int) CommentView {
		view := nodes[n].view
		for _, child := range nodes[n].children {
			view.Replies = append(view.Replies, build(child))
		}
		return view
	}
	result := make([]CommentView, 0, len(roots))
	for _, n := range roots {
		result = append(result, build(n))
	}
	return result
}
