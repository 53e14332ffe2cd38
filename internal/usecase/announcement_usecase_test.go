package usecase

import (
	"context"
	"testing"

	"job-board/internal/domain/announcement"
	"job-board/internal/domain/apperr"

	"github.com/google/uuid"
)

func refs(n int) []announcement.Ref {
	out := make([]announcement.Ref, n)
	for i := range out {
		out[i] = announcement.Ref{ID: uuid.New(), Title: "a", Pinned: i == 0}
	}
	return out
}

func TestAnnouncements_Neighbors_Boundaries(t *testing.T) {
	items := refs(3)
	uc := NewAnnouncementUsecase(&fakeAnnouncementRepo{refs: items}, nil)
	ctx := context.Background()

	first, err := uc.Neighbors(ctx, items[0].ID)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.Before != nil || first.Next == nil || first.Next.ID != items[1].ID {
		t.Fatalf("unexpected first neighbors: %+v", first)
	}

	mid, _ := uc.Neighbors(ctx, items[1].ID)
	if mid.Before == nil || mid.Before.ID != items[0].ID || mid.Next == nil || mid.Next.ID != items[2].ID {
		t.Fatalf("unexpected middle neighbors: %+v", mid)
	}

	last, _ := uc.Neighbors(ctx, items[2].ID)
	if last.Next != nil || last.Before == nil || last.Before.ID != items[1].ID {
		t.Fatalf("unexpected last neighbors: %+v", last)
	}
}

func TestAnnouncements_Neighbors_SingleAndMissing(t *testing.T) {
	items := refs(1)
	uc := NewAnnouncementUsecase(&fakeAnnouncementRepo{refs: items}, nil)

	n, err := uc.Neighbors(context.Background(), items[0].ID)
	if err != nil || n.Before != nil || n.Next != nil {
		t.Fatalf("single item must have no neighbors: %+v %v", n, err)
	}

	_, err = uc.Neighbors(context.Background(), uuid.New())
	if !apperr.HasCode(err, apperr.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestAnnouncements_Get_NotFound(t *testing.T) {
	_, err := NewAnnouncementUsecase(&fakeAnnouncementRepo{}, nil).Get(context.Background(), uuid.New())
	if e, ok := apperr.As(err); !ok || e.Key != "error.notFound.announcement" {
		t.Fatalf("expected announcement NOT_FOUND, got %v", err)
	}
}
