package s3client

import (
	"bytes"
	"context"
	"io"
	"workvera-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type Provider interface {
	MakeBucket(ctx context.Context) error
	PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	RemoveObject(ctx context.Context, key string) error
}

var Instance Provider

type s3client struct {
	minioClient *minio.Client
	bucketName  string
}

func NewClient() (Provider, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &s3client{minioClient: minioClient, bucketName: config.Conf.S3.BucketName}, nil
}

func (s s3client) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.minioClient.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func (s s3client) PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.minioClient.PutObject(ctx, s.bucketName, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "put object %s", key)
	}
	return nil
}

func (s s3client) GetObject(ctx context.Context, key string) ([]byte, error) {
	object, err := s.minioClient.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "get object %s", key)
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, object); err != nil {
		return nil, errors.Wrapf(err, "read object %s", key)
	}
	return buf.Bytes(), nil
}

func (s s3client) RemoveObject(ctx context.Context, key string) error {
	err := s.minioClient.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrapf(err, "remove object %s", key)
	}
	return nil
}
