package apiv1

import (
	"fmt"
	"workvera-backend/controllers"
	applicationshandler "workvera-backend/lib/applications"
	applicationsapimodels "workvera-backend/models/api/applications"

	"github.com/gofiber/fiber/v2"
)

type applicationsApiController struct {
	controllers.BaseAPIController
}

func InitApplicationsApiRouters(app *fiber.App) {
	controller := applicationsApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Patch("status", controller.changeStatus)
			idRoute.Get("pdf", controller.pdf)
		})
	})
}

// @Summary Applications
// @Tags Applications
// @Description Own applications for a seeker, applications to own postings for an employer, all for an admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   job_id		query		string	false	"posting id"
// @Param   status		query		string	false	"status"
// @Param   page		query		int	false	"page"
// @Param   limit		query		int	false	"page size"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationsapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applications [get]
func (c *applicationsApiController) list(ctx *fiber.Ctx) error {
	var filter applicationsapimodels.ApplicationFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	list, rowCount, err := applicationshandler.Instance.List(c.GetActor(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	return c.SendList(ctx, list, rowCount)
}

// @Summary Application
// @Tags Applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationsapimodels.ApplicationView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/applications/{id} [get]
func (c *applicationsApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load application")
	}
	resp, err := applicationshandler.Instance.GetByID(c.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load application")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Change application status
// @Tags Applications
// @Description Posting owner only; only adjacent statuses are accepted
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		applicationsapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationsapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/applications/{id}/status [patch]
func (c *applicationsApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change application status")
	}
	var payload applicationsapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change application status")
	}
	resp, err := applicationshandler.Instance.ChangeStatus(c.GetActor(ctx), id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change application status")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Delete application
// @Tags Applications
// @Description The applicant or the posting owner
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/applications/{id} [delete]
func (c *applicationsApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete application")
	}
	if err = applicationshandler.Instance.Delete(c.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete application")
	}
	return c.SendOK(ctx, nil)
}

// @Summary Application summary PDF
// @Tags Applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @router /api/v1/applications/{id}/pdf [get]
func (c *applicationsApiController) pdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build application summary")
	}
	data, fileName, err := applicationshandler.Instance.SummaryPDF(c.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build application summary")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Send(data)
}
