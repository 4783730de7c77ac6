package models

import "github.com/pkg/errors"

// UserRole is the closed set of actor roles. The zero value marks an anonymous caller.
type UserRole string

const (
	RoleNone     UserRole = ""
	RoleSeeker   UserRole = "seeker"
	RoleEmployer UserRole = "employer"
	RoleAdmin    UserRole = "admin"
)

var roleHumanName = map[UserRole]string{
	RoleSeeker:   "Job seeker",
	RoleEmployer: "Employer",
	RoleAdmin:    "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleSeeker, RoleEmployer, RoleAdmin:
		return true
	case RoleNone:
		return false
	}
	return false
}

// Validate accepts only roles available through self registration.
func (r UserRole) Validate() error {
	switch r {
	case RoleSeeker, RoleEmployer:
		return nil
	case RoleAdmin:
		return errors.New("administrator accounts cannot be self-registered")
	case RoleNone:
		return errors.New("role is required")
	}
	return errors.Errorf("unknown role %q", string(r))
}

func ParseUserRole(value string) (UserRole, error) {
	role := UserRole(value)
	if !role.IsValid() {
		return RoleNone, errors.Errorf("unknown role %q", value)
	}
	return role, nil
}

var AllRoles = []UserRole{RoleSeeker, RoleEmployer, RoleAdmin}
