package devserver

import (
	"crypto/rand"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
)

// account is a registered user with a bcrypt password hash.
type account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         domain.Role
}

// memoryStore holds all devserver state behind one mutex. It is
// deliberately in-memory: the server exists so the client can be
// exercised hermetically, without external infrastructure.
type memoryStore struct {
	mu         sync.Mutex
	accounts   map[string]*account // keyed by email
	complaints map[string]*domain.Complaint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts:   make(map[string]*account),
		complaints: make(map[string]*domain.Complaint),
	}
}

func (s *memoryStore) createAccount(a *account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[a.Email]; exists {
		return domain.ErrUserExists
	}
	a.ID = newID()
	s.accounts[a.Email] = a
	return nil
}

func (s *memoryStore) findAccount(email string) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	return a, ok
}

func (s *memoryStore) createComplaint(c *domain.Complaint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = newID()
	s.complaints[c.ID] = c
}

// listComplaints returns complaints newest first. An empty ownerRef
// lists all (admin scope); otherwise results are scoped to the owner.
func (s *memoryStore) listComplaints(ownerRef string) []domain.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		if ownerRef == "" || c.OwnerRef == ownerRef {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// transitionComplaint applies the status transition atomically,
// enforcing the lifecycle table. Last write wins between racing admins.
func (s *memoryStore) transitionComplaint(id string, target domain.Status, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.complaints[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !c.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.Status, target)
	}
	c.Status = target
	if target == domain.StatusResolved {
		resolved := now
		c.ResolvedAt = &resolved
	}
	return nil
}

// newID returns a 24-char hex identifier.
func newID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%024x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
