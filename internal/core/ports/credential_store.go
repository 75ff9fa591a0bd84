package ports

import "github.com/intelligrievance/grievance-client/internal/core/domain"

// CredentialStore persists the current session across process restarts.
// Load never fails: a missing, corrupt, or partial record is reported
// as absence (ok == false). Clear on an empty store is a no-op.
type CredentialStore interface {
	Save(session domain.Session) error
	Load() (session domain.Session, ok bool)
	Clear() error
}
