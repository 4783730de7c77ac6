package initializers

import (
	"workvera-backend/fiberlog"

	log "github.com/sirupsen/logrus"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

func InitLogger() *fiberlog.Config {
	log.SetFormatter(jsonFormatter())
	log.SetLevel(log.InfoLevel)

	logger := log.New()
	logger.SetFormatter(jsonFormatter())
	logger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger:      logger,
		MaxBodySize: 4096,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagResBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagUserID,
			fiberlog.RequestID,
		},
	}
}
