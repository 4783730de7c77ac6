package initializers

import (
	"context"
	"time"
	"workvera-backend/config"
	s3client "workvera-backend/s3"

	log "github.com/sirupsen/logrus"
)

// InitS3 installs the client; a failed bucket check is only logged.
func InitS3(ctx context.Context) {
	client, err := s3client.NewClient()
	if err != nil {
		panic("failed to create S3 client: " + err.Error())
	}
	s3client.Instance = client

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = client.MakeBucket(checkCtx); err != nil {
		log.WithError(err).
			WithField("bucket", config.Conf.S3.BucketName).
			Error("S3 bucket check failed")
		return
	}
	log.Info("S3 client initialized")
}
