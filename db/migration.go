package db

import (
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	if err := DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return errors.Wrap(err, "failed to create uuid-ossp extension")
	}
	log.Info("running migrations")
	models := []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"Profile", &dbmodels.Profile{}},
		{"FileStorage", &dbmodels.FileStorage{}},
		{"JobPost", &dbmodels.JobPost{}},
		{"Application", &dbmodels.Application{}},
		{"Skill", &dbmodels.Skill{}},
		{"SkillTest", &dbmodels.SkillTest{}},
		{"SkillResult", &dbmodels.SkillResult{}},
		{"Post", &dbmodels.Post{}},
		{"Comment", &dbmodels.Comment{}},
	}
	for _, m := range models {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", m.name)
		}
	}
	log.Info("migrations completed")
	return nil
}
