// Package role defines the closed set of user roles.
//
// Role values can only be obtained from the package variables or Parse, and
// Match takes one branch per role positionally: adding a role changes Match's
// signature and breaks every decision point that has not handled it.
package role

import (
	"fmt"
	"strings"
)

type Role struct {
	name string
}

var (
	Candidate = Role{name: "candidate"}
	Recruiter = Role{name: "recruiter"}
	Admin     = Role{name: "admin"}
)

func All() []Role {
	return []Role{Candidate, Recruiter, Admin}
}

func Parse(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range All() {
		if r.name == s {
			return r, nil
		}
	}
	return Role{}, fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return r.name }

func (r Role) IsZero() bool { return r.name == "" }

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.name), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Match returns the value for r's branch. ok is false for the zero Role.
func Match[T any](r Role, candidate, recruiter, admin T) (v T, ok bool) {
	switch r {
	case Candidate:
		return candidate, true
	case Recruiter:
		return recruiter, true
	case Admin:
		return admin, true
	}
	return v, false
}
