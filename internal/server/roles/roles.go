// Package roles defines the fixed role set and the permission strings the
// dashboard uses to decide which views to show. Roles are snapshots inside
// tokens; changing a user's role takes effect on their next login.
package roles

const (
	Admin     = "admin"
	Moderator = "moderator"
	Editor    = "editor"
)

var permissions = map[string][]string{
	Admin: {
		"dashboard", "products", "categories", "brands", "customers",
		"orders", "sales-returns", "invoices", "reports",
		"users", "invites", "profile", "activities",
	},
	Moderator: {
		"dashboard", "orders", "sales-returns", "invoices", "reports",
		"profile", "activities",
	},
	Editor: {
		"dashboard", "products", "categories", "brands", "orders",
		"sales-returns", "profile", "activities",
	},
}

// Valid reports whether role is one of the known roles.
func Valid(role string) bool {
	_, ok := permissions[role]
	return ok
}

// Permissions returns the permission strings for role. Unknown roles get an
// empty list.
func Permissions(role string) []string {
	return permissions[role]
}
