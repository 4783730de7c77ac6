package apiv1

import (
	"workvera-backend/controllers"
	skillshandler "workvera-backend/lib/skills"
	"workvera-backend/lib/utils/app-error"
	apimodels "workvera-backend/models/api"
	skillsapimodels "workvera-backend/models/api/skills"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type skillsApiController struct {
	controllers.BaseAPIController
}

func InitSkillsApiRouters(app *fiber.App) {
	controller := skillsApiController{}
	app.Route("skills", func(router fiber.Router) {
		router.Get("", controller.listSkills)
		router.Post("", controller.createSkill)
		router.Get(":id", controller.getSkill)
		router.Put(":id", controller.updateSkill)
		router.Delete(":id", controller.deleteSkill)
	})
	app.Route("skill-tests", func(router fiber.Router) {
		router.Get("", controller.listTests)
		router.Post("", controller.createTest)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getTest)
			idRoute.Put("", controller.updateTest)
			idRoute.Delete("", controller.deleteTest)
			idRoute.Post("submit", controller.submit)
		})
	})
	app.Route("skill-results", func(router fiber.Router) {
		router.Get("", controller.listResults)
		router.Get("me", controller.myResults)
		router.Get(":id", controller.getResult)
	})
}

// @Summary Skills
// @Tags Skills
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]skillsapimodels.SkillView}
// @router /api/v1/skills [get]
func (c *skillsApiController) listSkills(ctx *fiber.Ctx) error {
	list, err := skillshandler.Instance.ListSkills()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list skills")
	}
	return c.SendOK(ctx, list)
}

// @Summary Create a skill
// @Tags Skills
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		skillsapimodels.SkillData	true	"request body"
// @Success 201 {object} apimodels.Response{data=skillsapimodels.SkillView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/skills [post]
func (c *skillsApiController) createSkill(ctx *fiber.Ctx) error {
	var payload skillsapimodels.SkillData
	if err := c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create skill")
	}
	resp, err := skillshandler.Instance.CreateSkill(c.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create skill")
	}
	return c.SendCreated(ctx, resp)
}

// @Summary Skill
// @Tags Skills
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=skillsapimodels.SkillView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/skills/{id} [get]
func (c *skillsApiController) getSkill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load skill")
	}
	resp, err := skillshandler.Instance.GetSkill(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load skill")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Update a skill
// @Tags Skills
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		skillsapimodels.SkillData	true	"request body"
// @Success 200 {object} apimodels.Response{data=skillsapimodels.SkillView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/skills/{id} [put]
func (c *skillsApiController) updateSkill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update skill")
	}
	var payload skillsapimodels.SkillData
	if err = c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update skill")
	}
	resp, err := skillshandler.Instance.UpdateSkill(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update skill")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Delete a skill
// @Tags Skills
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/skills/{id} [delete]
func (c *skillsApiController) deleteSkill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete skill")
	}
	if err = skillshandler.Instance.DeleteSkill(c.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete skill")
	}
	return c.SendOK(ctx, nil)
}

// @Summary Skill tests
// @Tags Skill tests
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   skill_id		query		string	false	"only tests of this skill"
// @Success 200 {object} apimodels.Response{data=[]skillsapimodels.SkillTestView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/skill-tests [get]
func (c *skillsApiController) listTests(ctx *fiber.Ctx) error {
	skillID := ctx.Query("skill_id")
	if skillID != "" {
		if _, err := uuid.Parse(skillID); err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), apperror.Validation("skill_id: must be a valid UUID"), "failed to list skill tests")
		}
	}
	list, err := skillshandler.Instance.ListTests(skillID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list skill tests")
	}
	return c.SendOK(ctx, list)
}

// @Summary Create a skill test
// @Tags Skill tests
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		skillsapimodels.SkillTestData	true	"request body"
// @Success 201 {object} apimodels.Response{data=skillsapimodels.SkillTestView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/skill-tests [post]
func (c *skillsApiController) createTest(ctx *fiber.Ctx) error {
	var payload skillsapimodels.SkillTestData
	if err := c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create skill test")
	}
	resp, err := skillshandler.Instance.CreateTest(c.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create skill test")
	}
	return c.SendCreated(ctx, resp)
}

// @Summary Skill test
// @Tags Skill tests
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=skillsapimodels.SkillTestView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/skill-tests/{id} [get]
func (c *skillsApiController) getTest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load skill test")
	}
	resp, err := skillshandler.Instance.GetTest(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load skill test")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Update a skill test
// @Tags Skill tests
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		skillsapimodels.SkillTestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=skillsapimodels.SkillTestView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/skill-tests/{id} [put]
func (c *skillsApiController) updateTest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update skill test")
	}
	var payload skillsapimodels.SkillTestData
	if err = c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update skill test")
	}
	resp, err := skillshandler.Instance.UpdateTest(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update skill test")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Delete a skill test
// @Tags Skill tests
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/skill-tests/{id} [delete]
func (c *skillsApiController) deleteTest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete skill test")
	}
	if err = skillshandler.Instance.DeleteTest(c.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete skill test")
	}
	return c.SendOK(ctx, nil)
}

// @Summary Submit a skill test result
// @Tags Skill tests
// @Description One result per user and test
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		skillsapimodels.SubmitRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=skillsapimodels.SkillResultView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/skill-tests/{id}/submit [post]
func (c *skillsApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit result")
	}
	var payload skillsapimodels.SubmitRequest
	if err = c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit result")
	}
	resp, err := skillshandler.Instance.Submit(c.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit result")
	}
	return c.SendCreated(ctx, resp)
}

// @Summary Skill results
// @Tags Skill results
// @Description All results for an admin, own results otherwise
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page		query		int	false	"page"
// @Param   limit		query		int	false	"page size"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]skillsapimodels.SkillResultView}
// @router /api/v1/skill-results [get]
func (c *skillsApiController) listResults(ctx *fiber.Ctx) error {
	var paging apimodels.Pagination
	if err := c.QueryParser(ctx, &paging); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list skill results")
	}
	list, rowCount, err := skillshandler.Instance.ListResults(c.GetActor(ctx), paging)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list skill results")
	}
	return c.SendList(ctx, list, rowCount)
}

// @Summary Own skill results
// @Tags Skill results
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page		query		int	false	"page"
// @Param   limit		query		int	false	"page size"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]skillsapimodels.SkillResultView}
// @router /api/v1/skill-results/me [get]
func (c *skillsApiController) myResults(ctx *fiber.Ctx) error {
	var paging apimodels.Pagination
	if err := c.QueryParser(ctx, &paging); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list skill results")
	}
	list, rowCount, err := skillshandler.Instance.ListMyResults(c.GetActor(ctx), paging)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list skill results")
	}
	return c.SendList(ctx, list, rowCount)
}

// @Summary Skill result
// @Tags Skill results
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=skillsapimodels.SkillResultView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/skill-results/{id} [get]
func (c *skillsApiController) getResult(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load skill result")
	}
	resp, err := skillshandler.Instance.GetResult(c.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load skill result")
	}
	return c.SendOK(ctx, resp)
}
