package entity

import "time"

// User mirrors the users table. The password_hash column stores the raw
// credential string and is compared by plain equality; this is lab behavior
// carried over on purpose, not an endorsement.
type User struct {
	ID        int64
	Username  string
	Password  string
	Email     string
	Role      string
	CreatedAt time.Time
}

// Identity is the authenticated subset of User exposed after login.
type Identity struct {
	ID       int64
	Username string
	Email    string
}

// UserSummary is the shape returned by the dashboard search panel.
type UserSummary struct {
	ID       int64
	Username string
	Email    string
}
