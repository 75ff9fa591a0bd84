package service

import (
	"testing"
	"time"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
)

func TestCountsByStatus(t *testing.T) {
	collection := []domain.Complaint{
		{Status: domain.StatusPending},
		{Status: domain.StatusResolved},
		{Status: domain.StatusResolved},
		{Status: domain.Status("weird")},
	}

	counts := CountsByStatus(collection)
	if counts.Total != 4 || counts.Pending != 1 || counts.Resolved != 2 || counts.Other != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestCountsByStatus_Empty(t *testing.T) {
	counts := CountsByStatus(nil)
	if counts != (StatusCounts{}) {
		t.Fatalf("expected zero counts, got %+v", counts)
	}
}

func TestFilter_SearchMatchesIDOrCategory(t *testing.T) {
	collection := []domain.Complaint{
		{ID: "abc123", Category: "Technical Problem", Status: domain.StatusPending},
		{ID: "def456", Category: "Finance", Status: domain.StatusPending},
		{ID: "ghTECH9", Category: "Other", Status: domain.StatusResolved},
	}

	got := Filter(collection, "tech", StatusFilterAll)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(got), got)
	}
	if got[0].ID != "abc123" || got[1].ID != "ghTECH9" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestFilter_StatusNarrowsResults(t *testing.T) {
	collection := []domain.Complaint{
		{ID: "a", Category: "Finance", Status: domain.StatusPending},
		{ID: "b", Category: "Finance", Status: domain.StatusResolved},
	}

	got := Filter(collection, "finance", "resolved")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("unexpected result: %+v", got)
	}

	// Empty search matches everything; the sentinel disables the status filter.
	if got := Filter(collection, "", StatusFilterAll); len(got) != 2 {
		t.Fatalf("expected full collection, got %+v", got)
	}
}

func TestRecent_SortsNewestFirstAndTruncates(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	collection := []domain.Complaint{
		{ID: "old", CreatedAt: base},
		{ID: "newest", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(24 * time.Hour)},
	}

	got := Recent(collection, 2)
	if len(got) != 2 || got[0].ID != "newest" || got[1].ID != "mid" {
		t.Fatalf("unexpected order: %+v", got)
	}

	// The input collection must be left untouched.
	if collection[0].ID != "old" {
		t.Fatalf("input collection was reordered: %+v", collection)
	}
}

func TestRecent_ShortCollection(t *testing.T) {
	collection := []domain.Complaint{{ID: "only"}}
	if got := Recent(collection, 5); len(got) != 1 {
		t.Fatalf("expected 1 item, got %+v", got)
	}
}
