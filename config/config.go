package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr     string `default:"" env:"APP_HOST"`
		Port           int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMb    int    `default:"50" env:"APP_BODY_LIMIT_MB"`
		SwaggerEnabled *bool  `default:"true" env:"APP_SWAGGER_ENABLED"`
		SwaggerFile    string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
		ErrNotifyAddr  string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"workvera" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"change-me" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"AUTH_JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"604800" env:"AUTH_JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"workvera" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		MaxFileSizeMb   int    `default:"25" env:"S3_MAX_FILE_SIZE_MB"`
	}
	// empty email disables the bootstrap admin
	Admin struct {
		Email    string `default:"" env:"ADMIN_EMAIL"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
		Name     string `default:"Administrator" env:"ADMIN_NAME"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not loaded, using environment")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
