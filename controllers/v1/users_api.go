package apiv1

import (
	"fmt"
	"workvera-backend/config"
	"workvera-backend/controllers"
	usershandler "workvera-backend/lib/users"
	"workvera-backend/lib/utils/app-error"
	"workvera-backend/middleware"
	usersapimodels "workvera-backend/models/api/users"
	dbmodels "workvera-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type usersApiController struct {
	controllers.BaseAPIController
}

func InitUsersApiRouters(app *fiber.App) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Route("profile/me", func(profileRoute fiber.Router) {
			profileRoute.Get("", controller.getProfile)
			profileRoute.Put("", controller.updateProfile)
			profileRoute.Post("resume", controller.upload(dbmodels.ProfileResume))
			profileRoute.Get("resume", controller.download(dbmodels.ProfileResume))
			profileRoute.Post("video", controller.upload(dbmodels.ProfileVideoPitch))
			profileRoute.Get("video", controller.download(dbmodels.ProfileVideoPitch))
		})
	})
}

// @Summary User list
// @Tags Users
// @Description Admin only, ordered by email
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   role		query		string	false	"seeker, employer or admin"
// @Param   is_active	query		bool	false	"account state"
// @Param   page		query		int	false	"page"
// @Param   limit		query		int	false	"page size"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *usersApiController) list(ctx *fiber.Ctx) error {
	var filter usersapimodels.UserFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list users")
	}
	list, rowCount, err := usershandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list users")
	}
	return c.SendList(ctx, list, rowCount)
}

// @Summary Own profile
// @Tags Profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=usersapimodels.ProfileView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/users/profile/me [get]
func (c *usersApiController) getProfile(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.GetProfile(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load profile")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Update own profile
// @Tags Profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		usersapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/users/profile/me [put]
func (c *usersApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload usersapimodels.ProfileData
	if err := c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update profile")
	}
	resp, err := usershandler.Instance.UpdateProfile(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update profile")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Upload resume or video pitch
// @Tags Profile
// @Description Multipart field "file"; replaces the previous file of the same type
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file formData file true "file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/users/profile/me/resume [post]
// @router /api/v1/users/profile/me/video [post]
func (c *usersApiController) upload(fileType dbmodels.FileType) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		file, err := ctx.FormFile("file")
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), apperror.Wrap(apperror.KindValidation, err, "file: is required"), "failed to upload file")
		}
		maxSize := int64(config.Conf.S3.MaxFileSizeMb) * 1024 * 1024
		if file.Size > maxSize {
			return c.SendError(ctx, c.GetLogger(ctx),
				apperror.Validation(fmt.Sprintf("file: must not exceed %d MB", config.Conf.S3.MaxFileSizeMb)), "failed to upload file")
		}
		reader, err := file.Open()
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "failed to upload file")
		}
		defer reader.Close()
		info := dbmodels.UploadFileInfo{
			FileName:    file.Filename,
			FileType:    fileType,
			ContentType: file.Header.Get(fiber.HeaderContentType),
		}
		err = usershandler.Instance.UploadProfileFile(ctx.UserContext(), middleware.GetUserID(ctx), info, reader, file.Size)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "failed to upload file")
		}
		return c.SendOK(ctx, nil)
	}
}

// @Summary Download own resume or video pitch
// @Tags Profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/profile/me/resume [get]
// @router /api/v1/users/profile/me/video [get]
func (c *usersApiController) download(fileType dbmodels.FileType) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		data, rec, err := usershandler.Instance.GetProfileFile(ctx.UserContext(), middleware.GetUserID(ctx), fileType)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "failed to download file")
		}
		contentType := rec.ContentType
		if contentType == "" {
			contentType = fiber.MIMEOctetStream
		}
		ctx.Set(fiber.HeaderContentType, contentType)
		ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", rec.Name))
		return ctx.Send(data)
	}
}
