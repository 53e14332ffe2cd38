// Package apperr defines the domain error taxonomy shared by guards, use-cases
// and the action layer.
//
// An Error carries three things: a stable Code for programmatic branching, a
// locale-independent Key resolved by the presentation layer, and a default
// English Message used when no localized template exists.
package apperr

import "errors"

type Code string

const (
	CodeNotFound      Code = "NOT_FOUND"
	CodeForbidden     Code = "FORBIDDEN"
	CodeConflict      Code = "CONFLICT"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeFilterInvalid Code = "FILTER_INVALID"
)

const (
	KeyNotFound      = "error.notFound"
	KeyForbidden     = "error.forbidden"
	KeyConflict      = "error.conflict"
	KeyUnauthorized  = "error.unauthorized"
	KeyInputInvalid  = "error.inputInvalid"
	KeyFilterInvalid = "error.filterInvalid"
)

type Error struct {
	Code    Code
	Key     string
	Message string
}

func New(code Code, message, key string) *Error {
	return &Error{Code: code, Key: key, Message: message}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

// Is matches on Code so callers can write errors.Is(err, apperr.New(CodeConflict, "", "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

func HasCode(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

type Entity int

const (
	EntityUnknown Entity = iota
	EntityJobPosting
	EntityApplication
	EntityAnnouncement
	EntityUser
	EntityCandidate
)

type entry struct {
	key     string
	message string
}

var notFoundTable = map[Entity]entry{
	EntityJobPosting:   {key: "error.notFound.jobPosting", message: "job posting not found"},
	EntityApplication:  {key: "error.notFound.application", message: "application not found"},
	EntityAnnouncement: {key: "error.notFound.announcement", message: "announcement not found"},
	EntityUser:         {key: "error.notFound.user", message: "user not found"},
	EntityCandidate:    {key: "error.notFound.candidate", message: "candidate not found"},
}

func NotFound(entity Entity) *Error {
	if e, ok := notFoundTable[entity]; ok {
		return New(CodeNotFound, e.message, e.key)
	}
	return New(CodeNotFound, "resource not found", KeyNotFound)
}

type ConflictReason int

const (
	ConflictUnspecified ConflictReason = iota
	ConflictAlreadyApplied
	ConflictNotWithdrawable
	ConflictEmailTaken
)

var conflictTable = map[ConflictReason]entry{
	ConflictAlreadyApplied:  {key: "error.conflict.alreadyApplied", message: "already applied to this job posting"},
	ConflictNotWithdrawable: {key: "error.conflict.notWithdrawable", message: "only applications in applied status can be withdrawn"},
	ConflictEmailTaken:      {key: "error.conflict.emailTaken", message: "email already registered"},
}

func Conflict(reason ConflictReason) *Error {
	if e, ok := conflictTable[reason]; ok {
		return New(CodeConflict, e.message, e.key)
	}
	return New(CodeConflict, "conflict", KeyConflict)
}

func Forbidden() *Error {
	return New(CodeForbidden, "forbidden", KeyForbidden)
}

func Unauthorized() *Error {
	return New(CodeUnauthorized, "authentication required", KeyUnauthorized)
}

func InvalidCredentials() *Error {
	return New(CodeUnauthorized, "invalid email or password", "error.unauthorized.credentials")
}
