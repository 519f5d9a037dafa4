package entity

// Role represents an authorization role carried inside token claims.
// Admin gates account registration and product mutation; everyone else
// is a Viewer.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleViewer Role = "Viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleViewer:
		return true
	}
	return false
}
