package apiv1

import (
	"fmt"
	"workvera-backend/controllers"
	applicationshandler "workvera-backend/lib/applications"
	jobshandler "workvera-backend/lib/jobs"
	applicationsapimodels "workvera-backend/models/api/applications"
	jobsapimodels "workvera-backend/models/api/jobs"

	"github.com/gofiber/fiber/v2"
)

type jobsApiController struct {
	controllers.BaseAPIController
}

func InitJobsApiRouters(app *fiber.App) {
	controller := jobsApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("mine", controller.mine)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Patch("", controller.patch)
			idRoute.Delete("", controller.delete)
			idRoute.Post("apply", controller.apply)
			idRoute.Get("applications/export", controller.export)
		})
	})
}

// @Summary Job postings
// @Tags Jobs
// @Description Active postings, newest first
// @Param   title			query		string	false	"contains"
// @Param   description		query		string	false	"contains"
// @Param   skill_tags		query		string	false	"contains"
// @Param   location		query		string	false	"contains"
// @Param   job_type		query		string	false	"contains"
// @Param   job_type_exact	query		string	false	"exact"
// @Param   gap_friendly	query		bool	false	"exact"
// @Param   employer_name	query		string	false	"contains"
// @Param   page			query		int		false	"page"
// @Param   limit			query		int		false	"page size"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobsapimodels.JobPostView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobsApiController) list(ctx *fiber.Ctx) error {
	var filter jobsapimodels.JobPostFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list job postings")
	}
	list, rowCount, err := jobshandler.Instance.List(c.GetActor(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list job postings")
	}
	return c.SendList(ctx, list, rowCount)
}

// @Summary Own job postings
// @Tags Jobs
// @Description Employer's postings in any state
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobsapimodels.JobPostView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/jobs/mine [get]
func (c *jobsApiController) mine(ctx *fiber.Ctx) error {
	var filter jobsapimodels.JobPostFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list job postings")
	}
	list, rowCount, err := jobshandler.Instance.ListMine(c.GetActor(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list job postings")
	}
	return c.SendList(ctx, list, rowCount)
}

// @Summary Create a job posting
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		jobsapimodels.JobPostData	true	"request body"
// @Success 201 {object} apimodels.Response{data=jobsapimodels.JobPostView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/jobs [post]
func (c *jobsApiController) create(ctx *fiber.Ctx) error {
	var payload jobsapimodels.JobPostData
	if err := c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create job posting")
	}
	resp, err := jobshandler.Instance.Create(c.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create job posting")
	}
	return c.SendCreated(ctx, resp)
}

// @Summary Job posting
// @Tags Jobs
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobsapimodels.JobPostView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobsApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load job posting")
	}
	resp, err := jobshandler.Instance.GetByID(c.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load job posting")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Replace a job posting
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		jobsapimodels.JobPostData	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobsapimodels.JobPostView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id} [put]
func (c *jobsApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job posting")
	}
	var payload jobsapimodels.JobPostData
	if err = c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job posting")
	}
	resp, err := jobshandler.Instance.Update(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job posting")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Update job posting fields
// @Tags Jobs
// @Description Only sent fields change; is_active=false deactivates the posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		jobsapimodels.JobPostPatch	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobsapimodels.JobPostView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id} [patch]
func (c *jobsApiController) patch(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job posting")
	}
	var payload jobsapimodels.JobPostPatch
	if err = c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job posting")
	}
	resp, err := jobshandler.Instance.Patch(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job posting")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Delete a job posting
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id} [delete]
func (c *jobsApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete job posting")
	}
	if err = jobshandler.Instance.Delete(c.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete job posting")
	}
	return c.SendOK(ctx, nil)
}

// @Summary Apply for a job
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		applicationsapimodels.ApplyRequest	false	"request body"
// @Success 201 {object} apimodels.Response{data=applicationsapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/jobs/{id}/apply [post]
func (c *jobsApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to apply")
	}
	var payload applicationsapimodels.ApplyRequest
	if len(ctx.Body()) > 0 {
		if err = c.ParseAndValidate(ctx, &payload); err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "failed to apply")
		}
	}
	resp, err := applicationshandler.Instance.Apply(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to apply")
	}
	return c.SendCreated(ctx, resp)
}

// @Summary Export applications
// @Tags Jobs
// @Description XLSX with every application of the posting, owner only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id}/applications/export [get]
func (c *jobsApiController) export(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export applications")
	}
	buf, err := applicationshandler.Instance.ExportForJob(c.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export applications")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "applications-"+id+".xlsx"))
	return ctx.Send(buf.Bytes())
}
