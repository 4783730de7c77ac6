package dbmodels

type Post struct {
	BaseModel
	AuthorID string `gorm:"type:uuid;index"`
	Author   *User  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Title    string `gorm:"type:varchar(255)"`
	Content  string `gorm:"type:text"`
}

type PostExt struct {
	Post
	CommentsCount int64
}

type Comment struct {
	BaseModel
	PostID          string   `gorm:"type:uuid;index"`
	Post            *Post    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID        string   `gorm:"type:uuid;index"`
	Author          *User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Content         string   `gorm:"type:text"`
	ParentCommentID *string  `gorm:"type:uuid;index"`
	ParentComment   *Comment `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE"`
}
