package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
	"github.com/intelligrievance/grievance-client/internal/core/ports"
	"github.com/intelligrievance/grievance-client/internal/metrics"
)

// ComplaintService is the client-side complaint lifecycle model. It
// consults the session service for the caller's role; the server
// remains the authority on every decision it mirrors.
type ComplaintService struct {
	transport ports.Transport
	session   ports.IdentitySource
	log       zerolog.Logger
}

func NewComplaintService(transport ports.Transport, session ports.IdentitySource, log zerolog.Logger) *ComplaintService {
	return &ComplaintService{transport: transport, session: session, log: log}
}

// Submit validates the draft locally and creates a pending complaint.
// Validation failures never reach the network.
func (s *ComplaintService) Submit(ctx context.Context, draft ports.ComplaintDraft) (*domain.Complaint, error) {
	if err := checkStruct(draft); err != nil {
		return nil, err
	}
	if !domain.ValidCategory(draft.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, draft.Category)
	}

	var created domain.Complaint
	if err := s.transport.Do(ctx, http.MethodPost, "/complaints", draft, &created); err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("category", created.Category).Msg("complaint submitted")
	return &created, nil
}

// Mine returns a fresh snapshot of the caller's complaints.
func (s *ComplaintService) Mine(ctx context.Context) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	if err := s.transport.Do(ctx, http.MethodGet, "/complaints/my", nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// All returns a fresh snapshot of every complaint (admin scope).
func (s *ComplaintService) All(ctx context.Context) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	if err := s.transport.Do(ctx, http.MethodGet, "/admin/complaints", nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

type transitionRequest struct {
	Status domain.Status `json:"status"`
}

// Transition applies target to the complaint, then refetches the full
// collection and returns it. There is no optimistic local mutation: the
// displayed state is always a read after the write, so racing admins
// both converge on whatever the server applied last.
//
// The role pre-check mirrors server-side enforcement; a non-admin
// caller fails before any request is dispatched.
func (s *ComplaintService) Transition(ctx context.Context, complaintID string, target domain.Status) ([]domain.Complaint, error) {
	identity := s.session.Current()
	if identity == nil || !identity.IsAdmin() {
		return nil, fmt.Errorf("%w: status transitions require the admin role", domain.ErrForbidden)
	}
	if !target.IsTransitionTarget() {
		return nil, fmt.Errorf("%w: %q is not a transition target", domain.ErrInvalidTransition, target)
	}

	path := "/admin/complaints/" + complaintID + "/status"
	if err := s.transport.Do(ctx, http.MethodPut, path, transitionRequest{Status: target}, nil); err != nil {
		s.log.Warn().Err(err).Str("id", complaintID).Str("target", string(target)).Msg("transition rejected")
		return nil, err
	}
	metrics.TransitionsTotal.WithLabelValues(string(target)).Inc()
	s.log.Info().Str("id", complaintID).Str("target", string(target)).Msg("status transition applied")

	return s.All(ctx)
}

// Analytics fetches the admin aggregate report.
func (s *ComplaintService) Analytics(ctx context.Context) (*ports.AnalyticsReport, error) {
	var report ports.AnalyticsReport
	if err := s.transport.Do(ctx, http.MethodGet, "/admin/analytics", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
