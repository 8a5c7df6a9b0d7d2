package models

// User is the admin-visible account record. A pending user is one awaiting
// an approve/reject decision before being promoted to a full account.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// AdminStats is the aggregate counters shown on the admin dashboard.
type AdminStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	AdminCount     int64 `json:"adminCount"`
	ModeratorCount int64 `json:"moderatorCount"`
	UserCount      int64 `json:"userCount"`
}

// AdminDashboard is the all-or-nothing snapshot the admin console renders:
// either every part loaded or the whole load is treated as failed.
type AdminDashboard struct {
	Users        []User
	Stats        AdminStats
	PendingUsers []User
}
