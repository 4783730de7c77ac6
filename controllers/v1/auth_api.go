package apiv1

import (
	"workvera-backend/controllers"
	usershandler "workvera-backend/lib/users"
	"workvera-backend/middleware"
	authapimodels "workvera-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Get("me", middleware.AuthorizationRequired(), controller.me)
		router.Get("permissions", middleware.AuthorizationRequired(), controller.permissions)
	})
}

// @Summary Register an account
// @Tags Auth
// @Description Creates a seeker or employer account together with its profile
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=authapimodels.MeView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to register")
	}
	resp, err := usershandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to register")
	}
	return c.SendCreated(ctx, resp)
}

// @Summary Log in
// @Tags Auth
// @Description Exchanges credentials for an access and a refresh token
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to log in")
	}
	resp, err := usershandler.Instance.Login(payload.NormalizedEmail(), payload.Password)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to log in")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Refresh JWT
// @Tags Auth
// @Description Issues a new token pair for a valid refresh token
// @Param	body				body		authapimodels.JWTRefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.JWTRefreshRequest
	if err := c.ParseAndValidate(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to refresh token")
	}
	resp, err := usershandler.Instance.RefreshToken(payload.RefreshToken)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to refresh token")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Current user
// @Tags Auth
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.MeView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load user")
	}
	return c.SendOK(ctx, resp)
}

// @Summary Permissions of the current user
// @Tags Auth
// @Description Module permissions granted to the caller's role
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.PermissionsView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/permissions [get]
func (c *authApiController) permissions(ctx *fiber.Ctx) error {
	return c.SendOK(ctx, usershandler.Instance.Permissions(c.GetActor(ctx)))
}
