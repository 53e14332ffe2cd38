package user

import (
	"time"

	"job-board/internal/domain/role"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           role.Role  `json:"role"`
	OrganizationID *uuid.UUID `json:"organizationId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type Profile struct {
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	Headline    *string   `json:"headline"`
	Location    *string   `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Context is the identity resolved for the current request. It is rebuilt on
// every request from the session and a fresh user-record fetch.
type Context struct {
	UserID         uuid.UUID
	Email          string
	Role           role.Role
	OrganizationID *uuid.UUID
}

func (u User) Context() Context {
	return Context{
		UserID:         u.ID,
		Email:          u.Email,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
	}
}
