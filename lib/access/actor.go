// Package access decides which records a caller may see, mutate or transition.
//
// Every request follows the same order: Resolve narrows the candidate set, Authorize gates writes on
// a record that passed visibility, ValidateTransition checks status changes, and the uniqueness
// enforcer guards creates.
package access

import "workvera-backend/models"

// Actor is the authenticated caller as reported by the identity provider.
type Actor struct {
	ID       string
	Role     models.UserRole
	IsActive bool
}

func Anonymous() Actor {
	return Actor{}
}

// IsAuthenticated is false for anonymous callers and for deactivated accounts.
func (a Actor) IsAuthenticated() bool {
	return a.ID != "" && a.Role.IsValid() && a.IsActive
}

func (a Actor) IsSeeker() bool {
	return a.IsAuthenticated() && a.Role == models.RoleSeeker
}

func (a Actor) IsEmployer() bool {
	return a.IsAuthenticated() && a.Role == models.RoleEmployer
}

func (a Actor) IsAdmin() bool {
	return a.IsAuthenticated() && a.Role == models.RoleAdmin
}

type Resource string

const (
	ResourceJobPost     Resource = "job_post"
	ResourceApplication Resource = "application"
	ResourceSkill       Resource = "skill"
	ResourceSkillTest   Resource = "skill_test"
	ResourceSkillResult Resource = "skill_result"
	ResourcePost        Resource = "post"
	ResourceComment     Resource = "comment"
)

type Action string

const (
	ActionList       Action = "list"
	ActionRetrieve   Action = "retrieve"
	ActionMine       Action = "mine"
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionTransition Action = "transition"
)

func (a Action) IsRead() bool {
	switch a {
	case ActionList, ActionRetrieve, ActionMine:
		return true
	case ActionCreate, ActionUpdate, ActionDelete, ActionTransition:
		return false
	}
	return false
}
