package rbac

import (
	"workvera-backend/models"
)

var (
	AdminRoleSet          = []models.UserRole{models.RoleAdmin}
	EmployerRoleSet       = []models.UserRole{models.RoleEmployer}
	SeekerEmployerRoleSet = []models.UserRole{models.RoleSeeker, models.RoleEmployer}
	AllRoles              = models.AllRoles
)

func (i *impl) initRules() {
	i.addUsersRbac()
	i.profile()
	i.jobs()
	i.applications()
	i.skills()
	i.community()
}

func (i *impl) register(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, nil); err != nil {
		panic(err.Error())
	}
}

func (i *impl) addUsersRbac() {
	//VIEW
	i.register(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/v1/users [get]")
}

func (i *impl) profile() {
	// EDIT
	i.register(models.ProfileModule, models.EditPermission, AllRoles, "/api/v1/users/profile/me [get]")
	i.register(models.ProfileModule, models.EditPermission, AllRoles, "/api/v1/users/profile/me [put]")
	//FILES
	i.register(models.ProfileModule, models.FilesPermission, AllRoles, "/api/v1/users/profile/me/resume [post]")
	i.register(models.ProfileModule, models.FilesPermission, AllRoles, "/api/v1/users/profile/me/resume [get]")
	i.register(models.ProfileModule, models.FilesPermission, AllRoles, "/api/v1/users/profile/me/video [post]")
	i.register(models.ProfileModule, models.FilesPermission, AllRoles, "/api/v1/users/profile/me/video [get]")
}

func (i *impl) jobs() {
	// VIEW
	i.register(models.JobsModule, models.ViewPermission, EmployerRoleSet, "/api/v1/jobs/mine [get]")
	// CREATE is open to every role; a non employer gets a validation error from the handler
	i.register(models.JobsModule, models.CreatePermission, AllRoles, "/api/v1/jobs [post]")
	//EDIT
	i.register(models.JobsModule, models.EditPermission, EmployerRoleSet, "/api/v1/jobs/{id} [put]")
	i.register(models.JobsModule, models.EditPermission, EmployerRoleSet, "/api/v1/jobs/{id} [patch]")
	i.register(models.JobsModule, models.EditPermission, EmployerRoleSet, "/api/v1/jobs/{id} [delete]")
	//APPLY
	i.register(models.JobsModule, models.ApplyPermission, AllRoles, "/api/v1/jobs/{id}/apply [post]")
	//EXPORT
	i.register(models.JobsModule, models.ExportPermission, EmployerRoleSet, "/api/v1/jobs/{id}/applications/export [get]")
}

func (i *impl) applications() {
	// VIEW
	i.register(models.ApplicationsModule, models.ViewPermission, AllRoles, "/api/v1/applications [get]")
	i.register(models.ApplicationsModule, models.ViewPermission, AllRoles, "/api/v1/applications/{id} [get]")
	i.register(models.ApplicationsModule, models.ExportPermission, AllRoles, "/api/v1/applications/{id}/pdf [get]")
	//FLOW
	i.register(models.ApplicationsModule, models.FlowPermission, EmployerRoleSet, "/api/v1/applications/{id}/status [patch]")
	//EDIT
	i.register(models.ApplicationsModule, models.EditPermission, SeekerEmployerRoleSet, "/api/v1/applications/{id} [delete]")
}

func (i *impl) skills() {
	// VIEW, catalog and test reads are public
	i.register(models.SkillsModule, models.ViewPermission, AllRoles, "/api/v1/skill-results [get]")
	i.register(models.SkillsModule, models.ViewPermission, AllRoles, "/api/v1/skill-results/me [get]")
	i.register(models.SkillsModule, models.ViewPermission, AllRoles, "/api/v1/skill-results/{id} [get]")
	//SUBMIT
	i.register(models.SkillsModule, models.SubmitPermission, AllRoles, "/api/v1/skill-tests/{id}/submit [post]")
	//MANAGE
	i.register(models.SkillsModule, models.ManagePermission, AdminRoleSet, "/api/v1/skills [post]")
	i.register(models.SkillsModule, models.ManagePermission, AdminRoleSet, "/api/v1/skills/{id} [put]")
	i.register(models.SkillsModule, models.ManagePermission, AdminRoleSet, "/api/v1/skills/{id} [delete]")
	i.register(models.SkillsModule, models.ManagePermission, AdminRoleSet, "/api/v1/skill-tests [post]")
	i.register(models.SkillsModule, models.ManagePermission, AdminRoleSet, "/api/v1/skill-tests/{id} [put]")
	i.register(models.SkillsModule, models.ManagePermission, AdminRoleSet, "/api/v1/skill-tests/{id} [delete]")
}

func (i *impl) community() {
	// reads are public
	// CREATE
	i.register(models.CommunityModule, models.CreatePermission, AllRoles, "/api/v1/posts [post]")
	i.register(models.CommunityModule, models.CreatePermission, AllRoles, "/api/v1/posts/{id}/comments [post]")
	i.register(models.CommunityModule, models.CreatePermission, AllRoles, "/api/v1/posts/{id}/comment [post]")
	//EDIT, author only, checked by the handler
	i.register(models.CommunityModule, models.EditPermission, AllRoles, "/api/v1/posts/{id} [put]")
	i.register(models.CommunityModule, models.EditPermission, AllRoles, "/api/v1/posts/{id} [patch]")
	i.register(models.CommunityModule, models.EditPermission, AllRoles, "/api/v1/posts/{id} [delete]")
	i.register(models.CommunityModule, models.EditPermission, AllRoles, "/api/v1/comments/{id} [put]")
	i.register(models.CommunityModule, models.EditPermission, AllRoles, "/api/v1/comments/{id} [patch]")
	i.register(models.CommunityModule, models.EditPermission, AllRoles, "/api/v1/comments/{id} [delete]")
}
