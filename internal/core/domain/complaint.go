package domain

import (
	"strings"
	"time"
)

// Status represents the lifecycle state of a complaint.
type Status string

const (
	StatusPending  Status = "pending"
	StatusInReview Status = "in-review"
	StatusResolved Status = "resolved"
)

// validTransitions defines the allowed state machine transitions.
// Progression is strictly forward: nothing returns to pending and
// resolved is terminal.
var validTransitions = map[Status][]Status{
	StatusPending:  {StatusInReview, StatusResolved},
	StatusInReview: {StatusResolved},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the enumerated statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusResolved:
		return true
	}
	return false
}

// IsTransitionTarget reports whether s is a status an admin may request
// directly. Pending is only ever the initial state, never a target.
func (s Status) IsTransitionTarget() bool {
	return s == StatusInReview || s == StatusResolved
}

// Label returns the human-readable form of a status, e.g. "In Review".
func (s Status) Label() string {
	if s == "" {
		return "Unknown"
	}
	words := strings.Split(strings.ReplaceAll(string(s), "-", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Categories is the closed set of complaint categories.
var Categories = []string{
	"Technical Problem",
	"Service Issue",
	"Suggestion",
	"Finance",
	"Other",
}

// ValidCategory reports whether c is one of the enumerated categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Complaint is the core aggregate: a submitted grievance with a status lifecycle.
type Complaint struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	// OwnerRef references the submitting identity's id. It is display
	// and filtering data only; authorization always happens server-side.
	OwnerRef   string     `json:"owner_ref"`
	OwnerEmail string     `json:"owner_email,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// DisplayRef returns the short reference shown in tables, e.g. "GRV-9F3A".
func (c Complaint) DisplayRef() string {
	id := c.ID
	if len(id) > 4 {
		id = id[len(id)-4:]
	}
	return "GRV-" + strings.ToUpper(id)
}
