package auth

// Decision is the route guard's verdict for a navigation target.
type Decision int

const (
	// DecisionWait: the session is still initializing. Render a waiting
	// indicator, nothing else, and do not redirect.
	DecisionWait Decision = iota
	// DecisionLogin: unauthenticated. Redirect to the login entry point;
	// the attempted destination is discarded.
	DecisionLogin
	// DecisionAllow: render the protected content.
	DecisionAllow
	// DecisionDeny: authenticated but missing every required role. Render
	// an access-denied view with no redirect; the user navigates away
	// manually.
	DecisionDeny
)

// Evaluate is the only authorization decision point in the client. Content
// is rendered iff the session is authenticated and the required role set is
// empty or intersects the Principal's roles.
func Evaluate(s *Session, required []string) Decision {
	if s.Loading() {
		return DecisionWait
	}
	if s.Status() != StatusAuthenticated {
		return DecisionLogin
	}
	if len(required) == 0 {
		return DecisionAllow
	}
	for _, role := range required {
		if s.HasRole(role) {
			return DecisionAllow
		}
	}
	return DecisionDeny
}
