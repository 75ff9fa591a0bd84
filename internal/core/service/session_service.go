package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
	"github.com/intelligrievance/grievance-client/internal/core/ports"
)

// SessionService holds the in-memory reflection of the credential store
// and is its sole writer. Callers drive it from a single goroutine (the
// original client is one event loop); the invariant is that store and
// memory agree immediately after Initialize, Login, and Logout.
type SessionService struct {
	store     ports.CredentialStore
	transport ports.Transport
	log       zerolog.Logger

	identity *domain.Identity
	ready    bool
}

func NewSessionService(store ports.CredentialStore, transport ports.Transport, log zerolog.Logger) *SessionService {
	return &SessionService{store: store, transport: transport, log: log}
}

// Initialize loads the persisted session once at startup. A missing or
// undecodable record leaves the service unauthenticated; either way the
// service becomes ready and guard decisions may proceed.
func (s *SessionService) Initialize() {
	if session, ok := s.store.Load(); ok {
		s.identity = &session
		s.log.Debug().Str("email", session.Email).Str("role", string(session.Role)).Msg("session restored")
	} else {
		s.identity = nil
	}
	s.ready = true
}

// Ready reports whether Initialize has completed.
func (s *SessionService) Ready() bool {
	return s.ready
}

// Current returns the in-memory identity, or nil when unauthenticated.
func (s *SessionService) Current() *domain.Identity {
	return s.identity
}

// loginResponse mirrors the service's login payload: the user profile
// plus a bearer token alongside it.
type loginResponse struct {
	User  domain.Identity `json:"user"`
	Token string          `json:"token"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for an identity, persists it, then
// updates memory. The store write happens first so no caller can
// observe a logged-in memory state that would not survive a restart.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	var resp loginResponse
	err := s.transport.Do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login rejected")
		return nil, err
	}

	identity := resp.User
	identity.Token = resp.Token
	if !identity.Valid() {
		return nil, fmt.Errorf("%w: login response missing token or role", domain.ErrInvalidCredentials)
	}

	if err := s.store.Save(identity); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.identity = &identity

	s.log.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("logged in")
	return &identity, nil
}

// Register creates an account. It never establishes a session; the user
// logs in afterwards. Local validation fails fast before any network call.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) error {
	if err := checkStruct(input); err != nil {
		return err
	}
	if input.Role == "" {
		input.Role = domain.RoleUser
	}
	if !domain.ValidRole(input.Role) {
		return fmt.Errorf("%w: role must be user or admin", domain.ErrValidation)
	}

	if err := s.transport.Do(ctx, http.MethodPost, "/auth/register", input, nil); err != nil {
		return err
	}
	s.log.Info().Str("email", input.Email).Str("role", string(input.Role)).Msg("registered")
	return nil
}

// Logout clears the store then memory. Idempotent.
func (s *SessionService) Logout() {
	if err := s.store.Clear(); err != nil {
		// Memory is cleared regardless so the caller is logged out
		// either way; the orphaned record surfaces on next Initialize.
		s.log.Error().Err(err).Msg("failed to clear credential store")
	}
	s.identity = nil
}
