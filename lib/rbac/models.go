package rbac

import (
	"regexp"
	"workvera-backend/lib/access"
)

// RbacFunc decides whether the actor may call the matched route.
type RbacFunc func(actor access.Actor, uri string) bool

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
	ALL    HTTPMethod = "ALL"
)

type PathRule struct {
	// checked from fastest to slowest
	Exact    map[string]RbacFunc
	Patterns []PatternRule
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler RbacFunc
}
