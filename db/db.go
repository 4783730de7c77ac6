package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) (err error) {
	if DB != nil {
		return nil
	}
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger:         gorm_logrus.New(),
		TranslateError: true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	if debugMode {
		db = db.Debug()
	}
	DB = db
	if migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.Info("database connected")
	return nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	return db.Ping()
}
