package dbmodels

type FileStorage struct {
	BaseModel
	OwnerID     string   `gorm:"type:uuid;index"`
	Type        FileType `gorm:"type:varchar(50)"`
	Name        string
	ContentType string
	Size        int64
}

type FileType string

const (
	ProfileResume     FileType = "resume"
	ProfileVideoPitch FileType = "video_pitch"
)

type UploadFileInfo struct {
	OwnerID     string
	FileName    string
	FileType    FileType
	ContentType string
}
