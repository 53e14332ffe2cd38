package job

import (
	"time"

	"github.com/google/uuid"
)

type EmploymentType string

const (
	EmploymentFullTime  EmploymentType = "full_time"
	EmploymentPartTime  EmploymentType = "part_time"
	EmploymentIntern    EmploymentType = "intern"
	EmploymentFreelance EmploymentType = "freelance"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentIntern, EmploymentFreelance:
		return true
	}
	return false
}

type WorkArrangement string

const (
	WorkOnsite WorkArrangement = "onsite"
	WorkHybrid WorkArrangement = "hybrid"
	WorkRemote WorkArrangement = "remote"
)

func (w WorkArrangement) Valid() bool {
	switch w {
	case WorkOnsite, WorkHybrid, WorkRemote:
		return true
	}
	return false
}

type Salary struct {
	Min        *int64  `json:"min"`
	Max        *int64  `json:"max"`
	Currency   *string `json:"currency"`
	Period     *string `json:"period"`
	Negotiable bool    `json:"negotiable"`
}

type Family struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Job struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Family Family    `json:"family"`
}

type Posting struct {
	ID              uuid.UUID       `json:"id"`
	OrganizationID  uuid.UUID       `json:"organizationId"`
	Title           string          `json:"title"`
	EmploymentType  EmploymentType  `json:"employmentType"`
	WorkArrangement WorkArrangement `json:"workArrangement"`
	Salary          Salary          `json:"salary"`
	Description     string          `json:"description"`
	Job             Job             `json:"job"`
	Skills          []string        `json:"skills"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Summary is the posting projection embedded in a candidate's application list.
type Summary struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	EmploymentType  EmploymentType  `json:"employmentType"`
	WorkArrangement WorkArrangement `json:"workArrangement"`
	OrganizationID  uuid.UUID       `json:"organizationId"`
}
