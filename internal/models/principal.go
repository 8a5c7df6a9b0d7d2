// Package models holds the client-side domain types of UserHub: the
// authenticated Principal, documents, and admin-visible users.
package models

import "slices"

// Principal is the authenticated identity held by the client: the profile
// embedded in the sign-in response plus the issued bearer token.
//
// Invariant: a Principal exists in memory if and only if a valid access token
// is held in durable storage; the session store writes and clears the two
// together.
type Principal struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
}

// HasRole reports whether the principal carries the exact role tag. There is
// no role hierarchy: ROLE_ADMIN does not satisfy a ROLE_MODERATOR check
// unless the server issued both tags.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	return slices.Contains(p.Roles, role)
}

// Valid reports whether the principal is well-formed enough to act as a
// session: it must carry a username, a token, and at least one role. Stored
// data failing this check is treated as "no session".
func (p *Principal) Valid() bool {
	return p != nil && p.Username != "" && p.AccessToken != "" && len(p.Roles) > 0
}
