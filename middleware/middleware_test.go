package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"workvera-backend/config"
	"workvera-backend/lib/access"
	"workvera-backend/lib/rbac"
	"workvera-backend/lib/utils/app-error"
	authutils "workvera-backend/lib/utils/auth-utils"
	"workvera-backend/models"
	apimodels "workvera-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type fakeActors map[string]access.Actor

func (f fakeActors) GetActor(userID string) (access.Actor, error) {
	actor, ok := f[userID]
	if !ok {
		return access.Anonymous(), apperror.Unauthorized("user not found")
	}
	return actor, nil
}

func newTestApp(t *testing.T) *fiber.App {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 60
	rbac.NewHandler()

	actors := fakeActors{
		"s1": {ID: "s1", Role: models.RoleSeeker, IsActive: true},
		"s2": {ID: "s2", Role: models.RoleSeeker, IsActive: true},
		"e1": {ID: "e1", Role: models.RoleEmployer, IsActive: true},
		"e9": {ID: "e9", Role: models.RoleEmployer, IsActive: false},
	}
	app := fiber.New()
	app.Use(Authentication(actors), RbacMiddleware(rbac.Instance))
	ok := func(ctx *fiber.Ctx) error {
		return ctx.JSON(apimodels.NewResponse(GetUserID(ctx)))
	}
	app.Get("/api/v1/jobs", ok)
	app.Get("/api/v1/skills", ok)
	app.Get("/api/v1/skill-tests", ok)
	app.Get("/api/v1/skill-tests/:id", ok)
	app.Post("/api/v1/skill-tests/:id/submit", ok)
	app.Get("/api/v1/posts", ok)
	app.Post("/api/v1/posts", ok)
	app.Get("/api/v1/posts/:id", ok)
	app.Get("/api/v1/posts/:id/comments", ok)
	app.Get("/api/v1/comments/:id", ok)
	app.Get("/api/v1/jobs/mine", ok)
	app.Patch("/api/v1/applications/:id/status", ok)
	app.Get("/api/v1/auth/me", AuthorizationRequired(), ok)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string) (int, apimodels.Response) {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body := apimodels.Response{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func accessToken(t *testing.T, userID string, role models.UserRole) string {
	token, err := authutils.GetToken(userID, "Test", role)
	require.NoError(t, err)
	return token
}

func TestAuthenticationAndRbac(t *testing.T) {
	app := newTestApp(t)

	t.Run(`public route for anonymous`, func(t *testing.T) {
		status, body := call(t, app, fiber.MethodGet, "/api/v1/jobs", "")
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "", body.Data)
	})
	t.Run(`community and skill catalog reads for anonymous`, func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/skills",
			"/api/v1/skill-tests",
			"/api/v1/skill-tests/t1",
			"/api/v1/posts",
			"/api/v1/posts/p1",
			"/api/v1/posts/p1/comments",
			"/api/v1/comments/c1",
		} {
			status, _ := call(t, app, fiber.MethodGet, path, "")
			require.Equal(t, fiber.StatusOK, status, path)
		}
	})
	t.Run(`community writes and submissions need a login`, func(t *testing.T) {
		status, _ := call(t, app, fiber.MethodPost, "/api/v1/posts", "")
		require.Equal(t, fiber.StatusUnauthorized, status)
		status, _ = call(t, app, fiber.MethodPost, "/api/v1/skill-tests/t1/submit", "")
		require.Equal(t, fiber.StatusUnauthorized, status)
	})
	t.Run(`protected route for anonymous`, func(t *testing.T) {
		status, body := call(t, app, fiber.MethodGet, "/api/v1/jobs/mine", "")
		require.Equal(t, fiber.StatusUnauthorized, status)
		require.Equal(t, "UNAUTHORIZED", body.Code)

		status, _ = call(t, app, fiber.MethodGet, "/api/v1/auth/me", "")
		require.Equal(t, fiber.StatusUnauthorized, status)
	})
	t.Run(`role check`, func(t *testing.T) {
		status, body := call(t, app, fiber.MethodGet, "/api/v1/jobs/mine", accessToken(t, "s1", models.RoleSeeker))
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, "PERMISSION_DENIED", body.Code)

		status, body = call(t, app, fiber.MethodGet, "/api/v1/jobs/mine", accessToken(t, "e1", models.RoleEmployer))
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "e1", body.Data)

		status, _ = call(t, app, fiber.MethodPatch, "/api/v1/applications/a1/status", accessToken(t, "s1", models.RoleSeeker))
		require.Equal(t, fiber.StatusForbidden, status)
	})
	t.Run(`another seeker cannot change an application status`, func(t *testing.T) {
		status, body := call(t, app, fiber.MethodPatch, "/api/v1/applications/a1/status", accessToken(t, "s2", models.RoleSeeker))
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, "PERMISSION_DENIED", body.Code)
	})
	t.Run(`role comes from the account not the token`, func(t *testing.T) {
		status, _ := call(t, app, fiber.MethodGet, "/api/v1/jobs/mine", accessToken(t, "s1", models.RoleEmployer))
		require.Equal(t, fiber.StatusForbidden, status)
	})
	t.Run(`inactive account`, func(t *testing.T) {
		status, body := call(t, app, fiber.MethodGet, "/api/v1/jobs", accessToken(t, "e9", models.RoleEmployer))
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, "PERMISSION_DENIED", body.Code)
	})
	t.Run(`bad tokens`, func(t *testing.T) {
		status, _ := call(t, app, fiber.MethodGet, "/api/v1/jobs", "garbage")
		require.Equal(t, fiber.StatusUnauthorized, status)

		refresh, err := authutils.GetRefreshToken("s1", "Test")
		require.NoError(t, err)
		status, _ = call(t, app, fiber.MethodGet, "/api/v1/jobs", refresh)
		require.Equal(t, fiber.StatusUnauthorized, status)

		status, _ = call(t, app, fiber.MethodGet, "/api/v1/jobs", accessToken(t, "ghost", models.RoleSeeker))
		require.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(8, 32))
	app.Post("/api/v1/posts", func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) })
	app.Post("/api/v1/users/profile/me/resume", func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/posts", strings.NewReader(strings.Repeat("x", 16))))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/users/profile/me/resume", strings.NewReader(strings.Repeat("x", 16))))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
