package access

import (
	"fmt"
	"workvera-backend/lib/utils/app-error"
	"workvera-backend/models"
)

// ValidateTransition checks a status change of an application whose posting is owned by
// postingEmployerID. Only that employer may move the status, only to a declared status, and only
// along the adjacency table in models.
func ValidateTransition(actor Actor, current models.ApplicationStatus, postingEmployerID string, next models.ApplicationStatus) error {
	if !actor.IsEmployer() || postingEmployerID == "" || actor.ID != postingEmployerID {
		return apperror.PermissionDenied("only the employer who owns the job posting may change the application status")
	}
	if next == "" {
		return apperror.Validation("status field is required")
	}
	if err := next.Validate(); err != nil {
		return apperror.Validation(err.Error())
	}
	if current.IsTerminal() {
		return apperror.Validation(fmt.Sprintf("application is already %s, its status can no longer change", current))
	}
	if !current.CanTransitionTo(next) {
		return apperror.Validation(fmt.Sprintf("cannot change status from %s to %s", current, next))
	}
	return nil
}
