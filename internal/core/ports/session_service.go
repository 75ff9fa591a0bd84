package ports

import (
	"context"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
)

// RegisterInput carries the data for a new account. Registration never
// establishes a session; the user logs in afterwards.
type RegisterInput struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     domain.Role `json:"role"`
}

// IdentitySource exposes the current identity to consumers that only
// need to know who is acting, such as the lifecycle model's role
// pre-check and the access guard.
type IdentitySource interface {
	Current() *domain.Identity
}

// SessionService owns the in-memory identity and is the sole writer of
// the credential store.
type SessionService interface {
	// Initialize loads the persisted session once at startup and marks
	// the service ready. It must run before any guard decision.
	Initialize()
	// Ready reports whether Initialize has completed.
	Ready() bool
	// Current returns the in-memory identity, or nil when unauthenticated.
	Current() *domain.Identity
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	Register(ctx context.Context, input RegisterInput) error
	Logout()
}
