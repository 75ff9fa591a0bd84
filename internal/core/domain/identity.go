package domain

// Role is the authorization role carried by an identity.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ValidRole reports whether r is one of the two enumerated roles.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the authenticated principal: profile, role, and bearer token.
// Absence of an Identity means "unauthenticated".
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Session is the durable encoding of an Identity. The two are
// structurally identical; the distinct name marks which side of the
// credential store a value sits on.
type Session = Identity

// Valid reports whether the session round-trips to a usable identity:
// a non-empty token and a recognized role. Anything else is treated as
// no session at all.
func (i Identity) Valid() bool {
	return i.Token != "" && ValidRole(i.Role)
}
