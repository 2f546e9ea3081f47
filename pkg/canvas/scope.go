package canvas

import (
	"fmt"
	"strconv"
)

// Scope identifies the container a scoped resource lives under: a course,
// group, user, account, or nothing (global endpoints). It replaces any
// notion of ambient "current course" state; every scoped operation takes
// its Scope explicitly.
type Scope struct {
	kind string
	id   string
}

// CourseScope scopes requests under /courses/{id}.
func CourseScope(id int64) Scope {
	return Scope{kind: "courses", id: strconv.FormatInt(id, 10)}
}

// GroupScope scopes requests under /groups/{id}.
func GroupScope(id int64) Scope {
	return Scope{kind: "groups", id: strconv.FormatInt(id, 10)}
}

// AccountScope scopes requests under /accounts/{id}.
func AccountScope(id int64) Scope {
	return Scope{kind: "accounts", id: strconv.FormatInt(id, 10)}
}

// UserScope scopes requests under /users/{id}.
func UserScope(id int64) Scope {
	return Scope{kind: "users", id: strconv.FormatInt(id, 10)}
}

// SelfScope scopes requests under /users/self.
func SelfScope() Scope {
	return Scope{kind: "users", id: "self"}
}

// GlobalScope is the empty scope for endpoints like /global/outcome_groups.
func GlobalScope() Scope {
	return Scope{kind: "global"}
}

// IsZero reports whether the scope was never set.
func (s Scope) IsZero() bool {
	return s.kind == ""
}

// IsGlobal reports whether this is the global scope.
func (s Scope) IsGlobal() bool {
	return s.kind == "global"
}

// Path renders the scope's path prefix followed by suffix, e.g.
// CourseScope(42).Path("assignments") -> "courses/42/assignments".
func (s Scope) Path(suffix string) string {
	prefix := s.kind
	if s.id != "" {
		prefix += "/" + s.id
	}
	if suffix == "" {
		return prefix
	}
	return prefix + "/" + suffix
}

// ContextCode renders the Canvas context code form used by calendar and
// appointment endpoints, e.g. "course_42".
func (s Scope) ContextCode() string {
	switch s.kind {
	case "courses":
		return "course_" + s.id
	case "groups":
		return "group_" + s.id
	case "users":
		return "user_" + s.id
	case "accounts":
		return "account_" + s.id
	}
	return ""
}

func (s Scope) String() string {
	if s.IsZero() {
		return "scope()"
	}
	return fmt.Sprintf("scope(%s)", s.Path(""))
}
