package access

import (
	"workvera-backend/lib/utils/app-error"
	"workvera-backend/models"

	"github.com/pkg/errors"
)

// Scope is a declarative query predicate. Stores translate it into WHERE clauses; Match evaluates it
// against a single record. The zero value selects every record.
type Scope struct {
	None        bool   // empty set
	ActiveOnly  bool   // job_posts.is_active = true
	EmployerID  string // owner of the job posting (directly or through the application)
	ApplicantID string // applications.user_id
	ExamineeID  string // skill_results.user_id
}

func all() Scope {
	return Scope{}
}

func none() Scope {
	return Scope{None: true}
}

func (s Scope) IsUnrestricted() bool {
	return s == Scope{}
}

// Subject holds the fields of a record that scopes filter on.
type Subject struct {
	IsActive    bool
	EmployerID  string
	ApplicantID string
	ExamineeID  string
}

func (s Scope) Match(sub Subject) bool {
	if s.None {
		return false
	}
	if s.ActiveOnly && !sub.IsActive {
		return false
	}
	if s.EmployerID != "" && s.EmployerID != sub.EmployerID {
		return false
	}
	if s.ApplicantID != "" && s.ApplicantID != sub.ApplicantID {
		return false
	}
	if s.ExamineeID != "" && s.ExamineeID != sub.ExamineeID {
		return false
	}
	return true
}

// Resolve returns the subset of records of the given resource the actor may reach with action.
// Records outside the scope must be reported as not found.
func Resolve(actor Actor, resource Resource, action Action) (Scope, error) {
	switch resource {
	case ResourceJobPost:
		return resolveJobPost(actor, action)
	case ResourceApplication:
		return resolveApplication(actor), nil
	case ResourceSkillResult:
		return resolveSkillResult(actor, action), nil
	case ResourceSkill, ResourceSkillTest, ResourcePost, ResourceComment:
		return all(), nil
	}
	return none(), errors.Errorf("visibility is not defined for resource %q", resource)
}

func resolveJobPost(actor Actor, action Action) (Scope, error) {
	switch action {
	case ActionList:
		return Scope{ActiveOnly: true}, nil
	case ActionMine:
		if actor.IsEmployer() {
			return Scope{EmployerID: actor.ID}, nil
		}
		return none(), nil
	case ActionRetrieve, ActionUpdate, ActionDelete, ActionTransition:
		// an employer reaches only its own postings, in any state
		if actor.IsEmployer() {
			return Scope{EmployerID: actor.ID}, nil
		}
		return Scope{ActiveOnly: true}, nil
	case ActionCreate:
		return none(), errors.New("create has no visibility scope")
	}
	return none(), errors.Errorf("visibility is not defined for job post action %q", action)
}

func resolveApplication(actor Actor) Scope {
	if !actor.IsAuthenticated() {
		return none()
	}
	switch actor.Role {
	case models.RoleAdmin:
		return all()
	case models.RoleEmployer:
		return Scope{EmployerID: actor.ID}
	case models.RoleSeeker:
		return Scope{ApplicantID: actor.ID}
	case models.RoleNone:
		return none()
	}
	return none()
}

func resolveSkillResult(actor Actor, action Action) Scope {
	if !actor.IsAuthenticated() {
		return none()
	}
	if action == ActionMine {
		return Scope{ExamineeID: actor.ID}
	}
	switch actor.Role {
	case models.RoleAdmin:
		return all()
	case models.RoleEmployer, models.RoleSeeker:
		return Scope{ExamineeID: actor.ID}
	case models.RoleNone:
		return none()
	}
	return none()
}

// NotFound is the error for records outside the caller's scope as well as missing ones.
func NotFound(resource Resource) error {
	switch resource {
	case ResourceJobPost:
		return apperror.NotFound("job posting not found")
	case ResourceApplication:
		return apperror.NotFound("application not found")
	case ResourceSkill:
		return apperror.NotFound("skill not found")
	case ResourceSkillTest:
		return apperror.NotFound("skill test not found")
	case ResourceSkillResult:
		return apperror.NotFound("skill result not found")
	case ResourcePost:
		return apperror.NotFound("post not found")
	case ResourceComment:
		return apperror.NotFound("comment not found")
	}
	return apperror.NotFound("not found")
}
