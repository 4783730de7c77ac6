package filestorage

import (
	"context"
	"fmt"
	"io"
	"workvera-backend/db"
	filesdbstorage "workvera-backend/lib/file-storage/storage"
	"workvera-backend/lib/utils/app-error"
	initchecker "workvera-backend/lib/utils/init-checker"
	dbmodels "workvera-backend/models/db"
	s3client "workvera-backend/s3"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider stores opaque blobs for an owner. Content is never inspected.
type Provider interface {
	Upload(ctx context.Context, info dbmodels.UploadFileInfo, reader io.Reader, size int64) (fileID string, err error)
	Get(ctx context.Context, ownerID, fileID string) (data []byte, rec *dbmodels.FileStorage, err error)
	Delete(ctx context.Context, ownerID, fileID string) error
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db.DB", db.DB,
		"s3client.Instance", s3client.Instance,
	)
	Instance = NewInstance(s3client.Instance, filesdbstorage.NewInstance(db.DB))
}

func NewInstance(client s3client.Provider, store filesdbstorage.Provider) Provider {
	return impl{
		client: client,
		store:  store,
	}
}

type impl struct {
	client s3client.Provider
	store  filesdbstorage.Provider
}

func objectKey(ownerID string, fileType dbmodels.FileType, fileID string) string {
	return fmt.Sprintf("%s/%s/%s", ownerID, fileType, fileID)
}

func (i impl) Upload(ctx context.Context, info dbmodels.UploadFileInfo, reader io.Reader, size int64) (string, error) {
	if i.client == nil {
		return "", errors.New("file storage is not configured")
	}
	logger := log.WithFields(log.Fields{
		"owner_id":  info.OwnerID,
		"file_type": info.FileType,
	})
	rec := dbmodels.FileStorage{
		OwnerID:     info.OwnerID,
		Type:        info.FileType,
		Name:        info.FileName,
		ContentType: info.ContentType,
		Size:        size,
	}
	rec.ID = uuid.NewString()
	err := i.client.PutObject(ctx, objectKey(info.OwnerID, info.FileType, rec.ID), reader, size, info.ContentType)
	if err != nil {
		logger.WithError(err).Error("failed to upload file")
		return "", err
	}
	fileID, err := i.store.SaveFile(rec)
	if err != nil {
		logger.WithError(err).Error("failed to save file metadata")
		return "", err
	}
	return fileID, nil
}

func (i impl) Get(ctx context.Context, ownerID, fileID string) ([]byte, *dbmodels.FileStorage, error) {
	if i.client == nil {
		return nil, nil, errors.New("file storage is not configured")
	}
	rec, err := i.store.GetByID(ownerID, fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, apperror.NotFound("file not found")
	}
	data, err := i.client.GetObject(ctx, objectKey(rec.OwnerID, rec.Type, rec.ID))
	if err != nil {
		return nil, nil, err
	}
	return data, rec, nil
}

func (i impl) Delete(ctx context.Context, ownerID, fileID string) error {
	if i.client == nil {
		return errors.New("file storage is not configured")
	}
	rec, err := i.store.GetByID(ownerID, fileID)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	if err = i.client.RemoveObject(ctx, objectKey(rec.OwnerID, rec.Type, rec.ID)); err != nil {
		return err
	}
	return i.store.Delete(ownerID, fileID)
}
