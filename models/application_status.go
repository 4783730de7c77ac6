package models

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type ApplicationStatus string

const (
	ApplicationStatusSubmitted    ApplicationStatus = "submitted"
	ApplicationStatusReviewed     ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted  ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusOffered      ApplicationStatus = "offered"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn    ApplicationStatus = "withdrawn"
)

// ApplicationStatuses is the declared vocabulary in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusSubmitted,
	ApplicationStatusReviewed,
	ApplicationStatusShortlisted,
	ApplicationStatusInterviewing,
	ApplicationStatusOffered,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusSubmitted:    "Submitted",
	ApplicationStatusReviewed:     "Reviewed",
	ApplicationStatusShortlisted:  "Shortlisted",
	ApplicationStatusInterviewing: "Interviewing",
	ApplicationStatusOffered:      "Offered",
	ApplicationStatusRejected:     "Rejected",
	ApplicationStatusWithdrawn:    "Withdrawn",
}

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusSubmitted:    {ApplicationStatusReviewed, ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusReviewed:     {ApplicationStatusShortlisted, ApplicationStatusInterviewing, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusShortlisted:  {ApplicationStatusInterviewing, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusInterviewing: {ApplicationStatusOffered, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusOffered:      {ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusRejected:     {},
	ApplicationStatusWithdrawn:    {},
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) Validate() error {
	if slices.Contains(ApplicationStatuses, s) {
		return nil
	}
	return errors.Errorf("invalid status value, must be one of: %s", JoinApplicationStatuses())
}

func (s ApplicationStatus) IsTerminal() bool {
	next, ok := applicationTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether next is adjacent to s in the status graph.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	return slices.Contains(applicationTransitions[s], next)
}

func (s ApplicationStatus) NextStatuses() []ApplicationStatus {
	return slices.Clone(applicationTransitions[s])
}

func JoinApplicationStatuses() string {
	values := make([]string, 0, len(ApplicationStatuses))
	for _, status := range ApplicationStatuses {
		values = append(values, string(status))
	}
	return strings.Join(values, ", ")
}
