package entity

import "time"

// Session is the server-side login state, keyed by an opaque token. Removed
// only by explicit logout.
type Session struct {
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
