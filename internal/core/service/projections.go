package service

import (
	"sort"
	"strings"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
)

// List projections: pure, synchronous views recomputed on every read
// from a fetched collection plus local filter state. Collections are
// small, so no memoization is needed.

// StatusCounts is the dashboard stat-card breakdown.
type StatusCounts struct {
	Total    int
	Pending  int
	Resolved int
	// Other absorbs every unrecognized status so a bad record skews a
	// number instead of crashing a view.
	Other int
}

// CountsByStatus tallies the collection for the stat cards.
func CountsByStatus(collection []domain.Complaint) StatusCounts {
	counts := StatusCounts{Total: len(collection)}
	for _, c := range collection {
		switch c.Status {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusResolved:
			counts.Resolved++
		}
	}
	counts.Other = counts.Total - counts.Pending - counts.Resolved
	return counts
}

// StatusFilterAll is the sentinel meaning "no status filter".
const StatusFilterAll = "All"

// Filter returns the complaints whose id or category contains search
// (case-insensitive) and whose status matches statusFilter.
func Filter(collection []domain.Complaint, search, statusFilter string) []domain.Complaint {
	needle := strings.ToLower(search)
	var out []domain.Complaint
	for _, c := range collection {
		matchesSearch := strings.Contains(strings.ToLower(c.ID), needle) ||
			strings.Contains(strings.ToLower(c.Category), needle)
		matchesStatus := statusFilter == StatusFilterAll || string(c.Status) == statusFilter
		if matchesSearch && matchesStatus {
			out = append(out, c)
		}
	}
	return out
}

// Recent returns up to n complaints ordered newest first. The input
// collection is left untouched.
func Recent(collection []domain.Complaint, n int) []domain.Complaint {
	out := make([]domain.Complaint, len(collection))
	copy(out, collection)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
