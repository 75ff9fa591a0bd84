package domain

import "testing"

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusInReview, true},
		{StatusPending, StatusResolved, true},
		{StatusInReview, StatusResolved, true},
		{StatusInReview, StatusPending, false},
		{StatusResolved, StatusInReview, false},
		{StatusResolved, StatusPending, false},
		{StatusResolved, StatusResolved, false},
		{StatusPending, StatusPending, false},
		{Status("weird"), StatusResolved, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatus_IsTransitionTarget(t *testing.T) {
	if StatusPending.IsTransitionTarget() {
		t.Errorf("pending must not be a transition target")
	}
	if !StatusInReview.IsTransitionTarget() || !StatusResolved.IsTransitionTarget() {
		t.Errorf("in-review and resolved must be transition targets")
	}
}

func TestStatus_Label(t *testing.T) {
	cases := map[Status]string{
		StatusPending:  "Pending",
		StatusInReview: "In Review",
		StatusResolved: "Resolved",
		Status(""):     "Unknown",
	}
	for status, want := range cases {
		if got := status.Label(); got != want {
			t.Errorf("Label(%q): got %q, want %q", status, got, want)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if ValidCategory("Gossip") {
		t.Errorf("unknown category accepted")
	}
	if ValidCategory("technical problem") {
		t.Errorf("category matching must be exact, not case-insensitive")
	}
}

func TestComplaint_DisplayRef(t *testing.T) {
	c := Complaint{ID: "64f1c2aa9e3b7d0012ab9f3a"}
	if got := c.DisplayRef(); got != "GRV-9F3A" {
		t.Errorf("DisplayRef: got %q, want GRV-9F3A", got)
	}
	short := Complaint{ID: "ab"}
	if got := short.DisplayRef(); got != "GRV-AB" {
		t.Errorf("DisplayRef short id: got %q, want GRV-AB", got)
	}
}

func TestIdentity_Valid(t *testing.T) {
	ok := Identity{ID: "1", Email: "a@b.c", Role: RoleUser, Token: "tok"}
	if !ok.Valid() {
		t.Fatalf("expected identity to be valid")
	}
	if (Identity{Role: RoleUser}).Valid() {
		t.Errorf("identity without token must be invalid")
	}
	if (Identity{Token: "tok", Role: "superuser"}).Valid() {
		t.Errorf("identity with unknown role must be invalid")
	}
}
