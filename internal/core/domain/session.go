package domain

// Role is the closed set of role markers the gateway understands. The
// backend may attach further roles to a token; anything outside this set is
// ignored for routing.
type Role string

const (
	RoleHR       Role = "ROLE_RRHH"
	RoleEmployee Role = "ROLE_EMPLOYEE"
)

// Route identifies the dashboard a freshly logged-in user lands on.
type Route string

const (
	RouteHR       Route = "/rrhh"
	RouteEmployee Route = "/employee"
)

// Session holds the bearer token handed out by the backend together with
// the claims derived from it. Roles are derived solely from decoding the
// token; a session without roles is unusable for routing.
type Session struct {
	Token   string   `json:"token"`
	Subject string   `json:"subject"`
	Roles   []string `json:"roles"`
}

// HasRole reports whether the session carries the given role marker.
func (s Session) HasRole(r Role) bool {
	for _, have := range s.Roles {
		if have == string(r) {
			return true
		}
	}
	return false
}

// RouteForRoles applies the fixed routing precedence: the HR marker wins
// over the employee marker regardless of order; a role set containing
// neither yields ErrUnauthorizedRole.
//
// The decision is advisory UI routing only. Decoded claims are never an
// authorization decision; the backend re-validates every forwarded request.
func RouteForRoles(roles []string) (Route, error) {
	var employee bool
	for _, r := range roles {
		switch Role(r) {
		case RoleHR:
			return RouteHR, nil
		case RoleEmployee:
			employee = true
		}
	}
	if employee {
		return RouteEmployee, nil
	}
	return "", ErrUnauthorizedRole
}
