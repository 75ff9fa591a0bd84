package ports

import (
	"context"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
)

// ComplaintDraft is the locally validated submission input.
type ComplaintDraft struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
}

// StatusCount is one bucket of an aggregate breakdown.
type StatusCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// AnalyticsReport is the aggregate view served to admins.
type AnalyticsReport struct {
	ByStatus      []StatusCount `json:"by_status"`
	ByCategory    []StatusCount `json:"by_category"`
	ByDay         []StatusCount `json:"by_day"`
	AvgResolution string        `json:"avg_resolution"`
}

// ComplaintService is the client-side complaint lifecycle model. Every
// listing call returns a fresh authoritative snapshot; nothing is
// cached between calls.
type ComplaintService interface {
	// Submit validates the draft locally (ErrValidation, before any
	// network call) and creates a pending complaint.
	Submit(ctx context.Context, draft ComplaintDraft) (*domain.Complaint, error)
	// Mine lists the caller's complaints.
	Mine(ctx context.Context) ([]domain.Complaint, error)
	// All lists every complaint (admin scope).
	All(ctx context.Context) ([]domain.Complaint, error)
	// Transition applies target to the complaint and returns the
	// refetched authoritative collection. Non-admin callers fail with
	// ErrForbidden before any request is dispatched.
	Transition(ctx context.Context, complaintID string, target domain.Status) ([]domain.Complaint, error)
	// Analytics fetches the admin aggregate report.
	Analytics(ctx context.Context) (*AnalyticsReport, error)
}
