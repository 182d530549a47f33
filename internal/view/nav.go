package view

import (
	"slices"

	"deadlinehub/pkg/domain"
)

// NavItem is one entry of the navigation manifest with the roles allowed to
// see it.
type NavItem struct {
	Title string
	Href  string
	Roles []domain.Role
}

var navManifest = []NavItem{
	{Title: "Dashboard", Href: "/dashboard", Roles: []domain.Role{domain.RoleStudent, domain.RoleProfessor}},
	{Title: "Academic Deadlines", Href: "/deadlines", Roles: []domain.Role{domain.RoleStudent}},
	{Title: "Campus Events", Href: "/events", Roles: []domain.Role{domain.RoleStudent, domain.RoleProfessor}},
	{Title: "My Posts", Href: "/my-posts", Roles: []domain.Role{domain.RoleProfessor}},
	{Title: "Analytics", Href: "/analytics", Roles: []domain.Role{domain.RoleProfessor}},
	{Title: "Profile", Href: "/profile", Roles: []domain.Role{domain.RoleStudent, domain.RoleProfessor}},
}

// RoleNav filters the navigation manifest down to the entries whose allowed
// roles include role.
func RoleNav(role domain.Role) []NavItem {
	items := make([]NavItem, 0, len(navManifest))
	for _, item := range navManifest {
		if slices.Contains(item.Roles, role) {
			items = append(items, item)
		}
	}
	return items
}
