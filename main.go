package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"workvera-backend/config"
	apiv1 "workvera-backend/controllers/v1"
	"workvera-backend/fiberlog"
	"workvera-backend/initializers"
	"workvera-backend/lib/rbac"
	usershandler "workvera-backend/lib/users"
	"workvera-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

const mb = 1024 * 1024

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	bodyLimit := int64(config.Conf.App.BodyLimitMb) * mb
	uploadLimit := int64(config.Conf.S3.MaxFileSizeMb) * mb
	app := fiber.New(fiber.Config{
		BodyLimit: int(max(bodyLimit, uploadLimit)),
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	app.Use(middleware.WithBodyLimit(bodyLimit, uploadLimit))
	if config.Conf.App.ErrNotifyAddr != "" {
		app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	}

	if *config.Conf.App.SwaggerEnabled {
		if _, err := os.Stat(config.Conf.App.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				Path:     "/swagger",
				FilePath: config.Conf.App.SwaggerFile,
			}))
		} else {
			log.WithField("file", config.Conf.App.SwaggerFile).Warn("swagger file not found, docs disabled")
		}
	}

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.Authentication(usershandler.Instance))
	apiV1.Use(middleware.RbacMiddleware(rbac.Instance))
	app.Mount("/api/v1", apiV1)

	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitUsersApiRouters(apiV1)
	apiv1.InitJobsApiRouters(apiV1)
	apiv1.InitApplicationsApiRouters(apiV1)
	apiv1.InitSkillsApiRouters(apiV1)
	apiv1.InitCommunityApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-c:
		case <-ctx.Done():
			return
		}
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.WithError(err).Error("HTTP server stopped")
	}
	cancel()

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
