package access

import (
	"workvera-backend/lib/utils/app-error"
	"workvera-backend/models"
)

// Ownership carries the owning relations of one record.
type Ownership struct {
	Resource    Resource
	EmployerID  string
	ApplicantID string
	AuthorID    string
}

func JobPostOwnership(employerID string) Ownership {
	return Ownership{Resource: ResourceJobPost, EmployerID: employerID}
}

func ApplicationOwnership(applicantID, employerID string) Ownership {
	return Ownership{Resource: ResourceApplication, ApplicantID: applicantID, EmployerID: employerID}
}

func AuthorOwnership(resource Resource, authorID string) Ownership {
	return Ownership{Resource: resource, AuthorID: authorID}
}

func CatalogOwnership(resource Resource) Ownership {
	return Ownership{Resource: resource}
}

var errDenied = apperror.PermissionDenied("you do not have permission to perform this action")

// Authorize gates an action on a record that is already inside the actor's visibility scope.
// Ownership is role qualified: the matching id without the matching role is denied.
func Authorize(actor Actor, rec Ownership, action Action) error {
	if action.IsRead() {
		return nil
	}
	if !actor.IsAuthenticated() {
		return errDenied
	}
	if allowWrite(actor, rec) {
		return nil
	}
	return errDenied
}

func allowWrite(actor Actor, rec Ownership) bool {
	switch rec.Resource {
	case ResourceJobPost:
		return actor.Role == models.RoleEmployer && rec.EmployerID == actor.ID
	case ResourceApplication:
		switch actor.Role {
		case models.RoleSeeker:
			return rec.ApplicantID == actor.ID
		case models.RoleEmployer:
			return rec.EmployerID == actor.ID
		case models.RoleAdmin, models.RoleNone:
			return false
		}
		return false
	case ResourcePost, ResourceComment:
		return rec.AuthorID != "" && rec.AuthorID == actor.ID
	case ResourceSkill, ResourceSkillTest:
		return actor.Role == models.RoleAdmin
	case ResourceSkillResult:
		// results are immutable
		return false
	}
	return false
}
