// Package authz contains pure authorization guards. They take already-resolved
// identity and an injected capability check instead of querying storage, so
// they can be reused across resource types and tested without a database.
package authz

import (
	"context"

	"job-board/internal/domain/apperr"
	"job-board/internal/domain/role"

	"github.com/google/uuid"
)

// ReachabilityChecker reports whether the current viewer can reach the candidate,
// e.g. whether the viewer's organization has an application from them.
type ReachabilityChecker func(ctx context.Context, candidateID uuid.UUID) (bool, error)

func AssertOwnership(currentID, ownerID uuid.UUID) error {
	if currentID == uuid.Nil || currentID != ownerID {
		return apperr.Forbidden()
	}
	return nil
}

func AssertRole(current role.Role, allowed ...role.Role) error {
	for _, r := range allowed {
		if !r.IsZero() && current == r {
			return nil
		}
	}
	return apperr.Forbidden()
}

func CanViewCandidate(ctx context.Context, candidateID uuid.UUID, check ReachabilityChecker) (bool, error) {
	if check == nil {
		return false, nil
	}
	return check(ctx, candidateID)
}

func AssertCanViewCandidate(ctx context.Context, viewer role.Role, candidateID uuid.UUID, check ReachabilityChecker) error {
	mayView, _ := role.Match(viewer, false, true, true)
	if !mayView {
		return apperr.Forbidden()
	}

	ok, err := CanViewCandidate(ctx, candidateID, check)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Forbidden()
	}
	return nil
}
