package initializers

import (
	"context"
	"workvera-backend/config"
	"workvera-backend/fiberlog"
	applicationshandler "workvera-backend/lib/applications"
	communityhandler "workvera-backend/lib/community"
	xlsexport "workvera-backend/lib/export/xls"
	filestorage "workvera-backend/lib/file-storage"
	jobshandler "workvera-backend/lib/jobs"
	"workvera-backend/lib/rbac"
	skillshandler "workvera-backend/lib/skills"
	usershandler "workvera-backend/lib/users"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	rbac.NewHandler()
	xlsexport.NewHandler()
	filestorage.NewHandler()
	usershandler.NewHandler()
	jobshandler.NewHandler()
	applicationshandler.NewHandler()
	skillshandler.NewHandler()
	communityhandler.NewHandler()
	initAdmin()
}

func initAdmin() {
	admin := config.Conf.Admin
	if admin.Email == "" {
		return
	}
	if err := usershandler.Instance.EnsureAdmin(admin.Email, admin.Password, admin.Name); err != nil {
		panic("failed to create administrator: " + err.Error())
	}
	log.WithField("email", admin.Email).Info("administrator account ready")
}
