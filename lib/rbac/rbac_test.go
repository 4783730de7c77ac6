package rbac

import (
	"testing"
	"workvera-backend/lib/access"
	"workvera-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/jobs/{id}/apply [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/jobs/123-321/apply"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/jobs/apply"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/jobs/{id}/applications/{appID} [get]")
		require.Nil(t, err)
		require.Equal(t, GET, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/jobs/123-321/applications/qwe-ewr123-wr-12"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/jobs/we-ewr123-wr-12/applications"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`pattern without method`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/api/v1/jobs")
		require.Error(t, err)
	})

	t.Run(`normalize path`, func(t *testing.T) {
		require.Equal(t, "/", normalizePath(""))
		require.Equal(t, "/api/v1/jobs", normalizePath("api//v1/jobs/"))
	})

	i := newImpl()
	seeker := access.Actor{ID: "s1", Role: models.RoleSeeker, IsActive: true}
	employer := access.Actor{ID: "e1", Role: models.RoleEmployer, IsActive: true}
	admin := access.Actor{ID: "a1", Role: models.RoleAdmin, IsActive: true}

	t.Run(`exact rule wins over pattern`, func(t *testing.T) {
		handler, found := i.GetRuleFunc("get", "/api/v1/jobs/mine")
		require.True(t, found)
		require.True(t, handler(employer, "/api/v1/jobs/mine"))
		require.False(t, handler(seeker, "/api/v1/jobs/mine"))
	})

	t.Run(`public routes have no rule`, func(t *testing.T) {
		_, found := i.GetRuleFunc("GET", "/api/v1/jobs")
		require.False(t, found)
		_, found = i.GetRuleFunc("GET", "/api/v1/jobs/abc")
		require.False(t, found)
		for _, path := range []string{
			"/api/v1/skills",
			"/api/v1/skills/abc",
			"/api/v1/skill-tests",
			"/api/v1/skill-tests/abc",
			"/api/v1/posts",
			"/api/v1/posts/abc",
			"/api/v1/posts/abc/comments",
			"/api/v1/comments/abc",
		} {
			_, found = i.GetRuleFunc("GET", path)
			require.False(t, found, path)
		}
	})

	t.Run(`community writes and skill results still need a rule`, func(t *testing.T) {
		for _, route := range [][2]string{
			{"POST", "/api/v1/posts"},
			{"POST", "/api/v1/posts/abc/comments"},
			{"DELETE", "/api/v1/comments/abc"},
			{"POST", "/api/v1/skill-tests/abc/submit"},
			{"GET", "/api/v1/skill-results"},
			{"GET", "/api/v1/skill-results/me"},
		} {
			_, found := i.GetRuleFunc(route[0], route[1])
			require.True(t, found, route[1])
		}
	})

	t.Run(`status change is employer only`, func(t *testing.T) {
		handler, found := i.GetRuleFunc("PATCH", "/api/v1/applications/abc/status")
		require.True(t, found)
		require.True(t, handler(employer, ""))
		require.False(t, handler(seeker, ""))
		require.False(t, handler(admin, ""))
	})

	t.Run(`catalog management is admin only`, func(t *testing.T) {
		handler, found := i.GetRuleFunc("POST", "/api/v1/skill-tests")
		require.True(t, found)
		require.True(t, handler(admin, ""))
		require.False(t, handler(employer, ""))
	})

	t.Run(`inactive actor is rejected`, func(t *testing.T) {
		handler, found := i.GetRuleFunc("GET", "/api/v1/applications")
		require.True(t, found)
		require.False(t, handler(access.Actor{ID: "s1", Role: models.RoleSeeker}, ""))
	})

	t.Run(`permissions per role`, func(t *testing.T) {
		permissions := i.GetPermissions(models.RoleEmployer)
		require.Contains(t, permissions[models.JobsModule], models.ExportPermission)
		require.Contains(t, permissions[models.ApplicationsModule], models.FlowPermission)
		require.NotContains(t, i.GetPermissions(models.RoleSeeker)[models.ApplicationsModule], models.FlowPermission)
		require.Contains(t, i.GetPermissions(models.RoleAdmin)[models.SkillsModule], models.ManagePermission)
	})
}
