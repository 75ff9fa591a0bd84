package service

import "github.com/intelligrievance/grievance-client/internal/core/domain"

// DecisionKind enumerates guard outcomes.
type DecisionKind int

const (
	// DecisionPending means session loading has not finished; render
	// nothing and issue no redirect.
	DecisionPending DecisionKind = iota
	// DecisionAllow admits the identity to the guarded surface.
	DecisionAllow
	// DecisionRedirectLogin sends an unauthenticated visitor to login.
	DecisionRedirectLogin
	// DecisionRedirectHome sends an authenticated identity of the wrong
	// role to its own home surface.
	DecisionRedirectHome
)

// Decision is the value a guarded view acts on. The guard itself never
// navigates and never errors; the view layer performs the redirect.
type Decision struct {
	Kind DecisionKind
	// HomeRole carries the actor's role for DecisionRedirectHome, so the
	// view layer can pick the matching home surface.
	HomeRole domain.Role
}

// Decide gates a surface requiring the given role. It is pure: every
// call re-derives the outcome from the arguments alone.
//
// While ready is false the outcome is Pending, preventing a redirect
// race against a session that is still loading. An absent identity is
// sent to login. A role mismatch is a symmetric cross-redirect to the
// actor's own home, not an error page.
func Decide(identity *domain.Identity, required domain.Role, ready bool) Decision {
	if !ready {
		return Decision{Kind: DecisionPending}
	}
	if identity == nil {
		return Decision{Kind: DecisionRedirectLogin}
	}
	if identity.Role != required {
		return Decision{Kind: DecisionRedirectHome, HomeRole: identity.Role}
	}
	return Decision{Kind: DecisionAllow}
}
