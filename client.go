// Package grievanceclient assembles the complaint client from
// configuration: credential store backend, authenticated transport, and
// the session and complaint services on top.
package grievanceclient

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/intelligrievance/grievance-client/internal/core/ports"
	"github.com/intelligrievance/grievance-client/internal/core/service"
	"github.com/intelligrievance/grievance-client/internal/credstore"
	"github.com/intelligrievance/grievance-client/internal/pkg/config"
	"github.com/intelligrievance/grievance-client/internal/transport"
)

// Client is the assembled complaint client.
type Client struct {
	Session    *service.SessionService
	Complaints *service.ComplaintService
	Store      ports.CredentialStore
}

// New builds a client from configuration. The credential store backend
// is selected by cfg.CredentialsBackend, the transport is rooted at
// cfg.BaseURL, and any persisted session is restored before returning.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Client, error) {
	store, err := credstore.FromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tr := transport.NewClient(cfg.BaseURL, store, nil)

	session := service.NewSessionService(store, tr, log)
	session.Initialize()

	return &Client{
		Session:    session,
		Complaints: service.NewComplaintService(tr, session, log),
		Store:      store,
	}, nil
}
