package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
	"github.com/intelligrievance/grievance-client/internal/core/ports"
)

type stubIdentity struct {
	identity *domain.Identity
}

func (s *stubIdentity) Current() *domain.Identity { return s.identity }

func admin() *stubIdentity {
	return &stubIdentity{identity: &domain.Identity{ID: "a1", Role: domain.RoleAdmin, Token: "tok"}}
}

func user() *stubIdentity {
	return &stubIdentity{identity: &domain.Identity{ID: "u1", Role: domain.RoleUser, Token: "tok"}}
}

func validDraft() ports.ComplaintDraft {
	return ports.ComplaintDraft{
		Title:       "Broken login page",
		Category:    "Technical Problem",
		Description: "The login page times out on every attempt.",
	}
}

func TestComplaintService_Submit_FailsFastOnInvalidDraft(t *testing.T) {
	transport := &stubTransport{}
	svc := NewComplaintService(transport, user(), zerolog.Nop())

	bad := []ports.ComplaintDraft{
		{Title: "", Category: "Other", Description: "long enough text"},
		{Title: "t", Category: "Other", Description: "short"},
		{Title: "t", Category: "", Description: "long enough text"},
		{Title: "t", Category: "Gossip", Description: "long enough text"},
	}
	for _, draft := range bad {
		if _, err := svc.Submit(context.Background(), draft); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("draft %+v: expected ErrValidation, got %v", draft, err)
		}
	}
	if len(transport.calls) != 0 {
		t.Fatalf("invalid draft must not reach the network: %v", transport.calls)
	}
}

func TestComplaintService_Submit_CreatesPendingComplaint(t *testing.T) {
	transport := &stubTransport{respond: func(_, path string, _, out any) error {
		created := out.(*domain.Complaint)
		*created = domain.Complaint{ID: "c1", Title: "Broken login page", Status: domain.StatusPending}
		return nil
	}}
	svc := NewComplaintService(transport, user(), zerolog.Nop())

	created, err := svc.Submit(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("expected pending complaint, got %s", created.Status)
	}
	if len(transport.calls) != 1 || transport.calls[0] != "POST /complaints" {
		t.Fatalf("unexpected calls: %v", transport.calls)
	}
}

func TestComplaintService_Transition_RequiresAdmin(t *testing.T) {
	transport := &stubTransport{}

	for _, source := range []*stubIdentity{user(), {identity: nil}} {
		svc := NewComplaintService(transport, source, zerolog.Nop())
		if _, err := svc.Transition(context.Background(), "c1", domain.StatusResolved); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	}
	if len(transport.calls) != 0 {
		t.Fatalf("forbidden transition must not dispatch a request: %v", transport.calls)
	}
}

func TestComplaintService_Transition_RejectsNonTargetStatus(t *testing.T) {
	transport := &stubTransport{}
	svc := NewComplaintService(transport, admin(), zerolog.Nop())

	for _, target := range []domain.Status{domain.StatusPending, domain.Status("weird")} {
		if _, err := svc.Transition(context.Background(), "c1", target); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("target %q: expected ErrInvalidTransition, got %v", target, err)
		}
	}
	if len(transport.calls) != 0 {
		t.Fatalf("invalid target must not dispatch a request: %v", transport.calls)
	}
}

func TestComplaintService_Transition_RefetchesAfterWrite(t *testing.T) {
	refetched := []domain.Complaint{
		{ID: "c1", Status: domain.StatusResolved, CreatedAt: time.Now()},
	}
	transport := &stubTransport{respond: func(method, path string, _, out any) error {
		if method == "GET" {
			*(out.(*[]domain.Complaint)) = refetched
		}
		return nil
	}}
	svc := NewComplaintService(transport, admin(), zerolog.Nop())

	collection, err := svc.Transition(context.Background(), "c1", domain.StatusResolved)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}

	// The write must be followed by a fresh read; the caller only ever
	// sees read-after-write state.
	want := []string{"PUT /admin/complaints/c1/status", "GET /admin/complaints"}
	if len(transport.calls) != 2 || transport.calls[0] != want[0] || transport.calls[1] != want[1] {
		t.Fatalf("unexpected call sequence: %v", transport.calls)
	}
	if len(collection) != 1 || collection[0].Status != domain.StatusResolved {
		t.Fatalf("expected refetched authoritative collection, got %+v", collection)
	}
}

func TestComplaintService_Transition_ServerRejectionPropagates(t *testing.T) {
	transport := &stubTransport{respond: func(method, _ string, _, _ any) error {
		if method == "PUT" {
			return domain.ErrInvalidTransition
		}
		return nil
	}}
	svc := NewComplaintService(transport, admin(), zerolog.Nop())

	if _, err := svc.Transition(context.Background(), "c1", domain.StatusInReview); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	// No refetch after a failed write.
	if len(transport.calls) != 1 {
		t.Fatalf("unexpected calls after rejected write: %v", transport.calls)
	}
}

func TestComplaintService_ListsAreFreshSnapshots(t *testing.T) {
	transport := &stubTransport{respond: func(_, _ string, _, out any) error {
		*(out.(*[]domain.Complaint)) = []domain.Complaint{{ID: "c1"}}
		return nil
	}}
	svc := NewComplaintService(transport, user(), zerolog.Nop())

	if _, err := svc.Mine(context.Background()); err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if _, err := svc.Mine(context.Background()); err != nil {
		t.Fatalf("Mine: %v", err)
	}
	// Two reads, two requests: nothing is cached between calls.
	if len(transport.calls) != 2 {
		t.Fatalf("expected a request per read, got %v", transport.calls)
	}
}

func TestComplaintService_Analytics(t *testing.T) {
	transport := &stubTransport{respond: func(_, path string, _, out any) error {
		if path != "/admin/analytics" {
			t.Fatalf("unexpected path %s", path)
		}
		report := out.(*ports.AnalyticsReport)
		report.ByStatus = []ports.StatusCount{{Key: "pending", Count: 2}}
		report.AvgResolution = "26h0m0s"
		return nil
	}}
	svc := NewComplaintService(transport, admin(), zerolog.Nop())

	report, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if len(report.ByStatus) != 1 || report.AvgResolution != "26h0m0s" {
		t.Fatalf("unexpected report: %+v", report)
	}
}
