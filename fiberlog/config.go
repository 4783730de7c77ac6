package fiberlog

import "github.com/sirupsen/logrus"

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// MaxBodySize truncates logged request and response bodies, 0 keeps them whole
	MaxBodySize int
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
