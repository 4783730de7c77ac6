package controllers

import (
	"workvera-backend/lib/access"
	"workvera-backend/lib/utils/app-error"
	"workvera-backend/middleware"
	apimodels "workvera-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

type validatable interface {
	Validate() error
}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Info("failed to parse request body")
		return apperror.Wrap(apperror.KindValidation, err, "failed to read request data")
	}
	return nil
}

// ParseAndValidate reads the body into out and runs its validation rules.
func (c *BaseAPIController) ParseAndValidate(ctx *fiber.Ctx, out validatable) error {
	if err := c.BodyParser(ctx, out); err != nil {
		return err
	}
	return c.Validate(out)
}

// QueryParser reads query parameters into out and runs its validation rules.
func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out validatable) error {
	if err := ctx.QueryParser(out); err != nil {
		return apperror.Wrap(apperror.KindValidation, err, "invalid query parameters")
	}
	return c.Validate(out)
}

func (c *BaseAPIController) Validate(data validatable) error {
	if err := data.Validate(); err != nil {
		return apperror.Wrap(apperror.KindValidation, err, err.Error())
	}
	return nil
}

// GetID returns the uuid path parameter name, "id" by default.
func (c *BaseAPIController) GetID(ctx *fiber.Ctx, name ...string) (string, error) {
	param := "id"
	if len(name) > 0 {
		param = name[0]
	}
	id := ctx.Params(param)
	if _, err := uuid.Parse(id); err != nil {
		return "", apperror.Validation(param + ": must be a valid UUID")
	}
	return id, nil
}

func (c *BaseAPIController) GetActor(ctx *fiber.Ctx) access.Actor {
	return middleware.GetActor(ctx)
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithFields(log.Fields{
		"user_id":    middleware.GetUserID(ctx),
		"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
		"path":       ctx.Path(),
	})
}

// SendError writes the error envelope. Unclassified errors are logged and answered with msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	status, resp := apimodels.NewAppError(err, msg)
	if apperror.KindOf(err) == apperror.KindInternal {
		logger.WithError(err).Error(msg)
	} else {
		logger.WithField("code", resp.Code).Debug(errors.Cause(err).Error())
	}
	return ctx.Status(status).JSON(resp)
}

func (c *BaseAPIController) SendOK(ctx *fiber.Ctx, data interface{}) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

func (c *BaseAPIController) SendCreated(ctx *fiber.Ctx, data interface{}) error {
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(data))
}

func (c *BaseAPIController) SendList(ctx *fiber.Ctx, data interface{}, rowCount int64) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(data, rowCount))
}
