package common

// Role tags attached to a Principal. Membership is checked by exact string
// match: holding RoleAdmin does not imply RoleModerator unless the server
// includes both tags.
const (
	RoleUser      = "ROLE_USER"
	RoleModerator = "ROLE_MODERATOR"
	RoleAdmin     = "ROLE_ADMIN"
)

// AuthorizationHeader carries the access token on outbound requests.
const AuthorizationHeader = "Authorization"
