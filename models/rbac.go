package models

type Module string

const (
	JobsModule         Module = "JOBS"
	ApplicationsModule Module = "APPLICATIONS"
	SkillsModule       Module = "SKILLS"
	CommunityModule    Module = "COMMUNITY"
	UsersModule        Module = "USERS"
	ProfileModule      Module = "PROFILE"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	ApplyPermission  Permission = "APPLY"
	FlowPermission   Permission = "FLOW"
	SubmitPermission Permission = "SUBMIT"
	ExportPermission Permission = "EXPORT"
	FilesPermission  Permission = "FILES"
)
