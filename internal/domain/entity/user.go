package entity

// Valid roles for User.
const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
	RoleController = "controller"
)

// User is a login account for the tracker.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"` // bcrypt hash, never plaintext
	Name         string `json:"name"`
	Role         string `json:"role"`
	Department   string `json:"department,omitempty"`
}
