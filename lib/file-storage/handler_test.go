package filestorage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"workvera-backend/lib/utils/app-error"
	dbmodels "workvera-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeBucket struct {
	objects map[string][]byte
}

func (f *fakeBucket) MakeBucket(ctx context.Context) error { return nil }

func (f *fakeBucket) PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeBucket) GetObject(ctx context.Context, key string) ([]byte, error) {
	return f.objects[key], nil
}

func (f *fakeBucket) RemoveObject(ctx context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

type fakeFiles struct {
	rows map[string]dbmodels.FileStorage
}

func (f *fakeFiles) SaveFile(rec dbmodels.FileStorage) (string, error) {
	f.rows[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeFiles) GetByID(ownerID, id string) (*dbmodels.FileStorage, error) {
	rec, ok := f.rows[id]
	if !ok || rec.OwnerID != ownerID {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeFiles) Delete(ownerID, id string) error {
	delete(f.rows, id)
	return nil
}

func TestFileStorage(t *testing.T) {
	bucket := &fakeBucket{objects: map[string][]byte{}}
	files := &fakeFiles{rows: map[string]dbmodels.FileStorage{}}
	storage := NewInstance(bucket, files)
	ctx := context.Background()
	content := []byte("%PDF-1.4 resume")

	fileID, err := storage.Upload(ctx, dbmodels.UploadFileInfo{
		OwnerID:     "u1",
		FileName:    "cv.pdf",
		FileType:    dbmodels.ProfileResume,
		ContentType: "application/pdf",
	}, bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)
	require.NotEmpty(t, fileID)

	t.Run(`object key layout`, func(t *testing.T) {
		require.Len(t, bucket.objects, 1)
		for key := range bucket.objects {
			require.True(t, strings.HasPrefix(key, "u1/resume/"))
			require.True(t, strings.HasSuffix(key, fileID))
		}
	})
	t.Run(`owner reads back`, func(t *testing.T) {
		data, rec, err := storage.Get(ctx, "u1", fileID)
		require.NoError(t, err)
		require.Equal(t, content, data)
		require.Equal(t, "cv.pdf", rec.Name)
	})
	t.Run(`other owner gets not found`, func(t *testing.T) {
		_, _, err := storage.Get(ctx, "u2", fileID)
		require.True(t, apperror.Is(err, apperror.KindNotFound))
	})
	t.Run(`delete removes object and row`, func(t *testing.T) {
		require.NoError(t, storage.Delete(ctx, "u1", fileID))
		require.Empty(t, bucket.objects)
		require.Empty(t, files.rows)
	})
	t.Run(`unconfigured storage`, func(t *testing.T) {
		_, err := NewInstance(nil, files).Upload(ctx, dbmodels.UploadFileInfo{OwnerID: "u1"}, bytes.NewReader(nil), 0)
		require.Error(t, err)
	})
}
