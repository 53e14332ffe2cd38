// Package application holds the job application entity and its status rules.
//
// Status graph:
//
//	APPLIED ──► ACCEPTED
//	   │──────► REJECTED
//	   └──────► WITHDRAWN
//
// Only the withdraw transition is driven by candidates; accept and reject
// belong to the recruiter flow.
package application

import (
	"fmt"
	"time"

	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied   Status = "applied"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusApplied, StatusAccepted, StatusRejected, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Active reports whether the application still blocks a new one for the same posting.
func (s Status) Active() bool { return s != StatusWithdrawn }

func (s Status) CanWithdraw() bool { return s == StatusApplied }

type Application struct {
	ID           uuid.UUID `json:"id"`
	CandidateID  uuid.UUID `json:"candidateId"`
	JobPostingID uuid.UUID `json:"jobPostingId"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// WithPosting is a candidate's own view of an application.
type WithPosting struct {
	Application
	JobPosting job.Summary `json:"jobPosting"`
}

type CandidatePublicProfile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Headline    *string   `json:"headline"`
	Location    *string   `json:"location"`
}

// WithCandidate is a recruiter's view of an application.
type WithCandidate struct {
	Application
	Candidate CandidatePublicProfile `json:"candidate"`
}
