package domain

import (
	"regexp"
	"strings"
)

// Role is the closed set of actor roles in the adoption platform. Every
// other component consumes this enum, never a raw backend string.
type Role string

const (
	RoleAdopter    Role = "adopter"
	RoleEmployee   Role = "employee"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Landing routes agreed with the web frontend's router.
const (
	RouteAdmin    = "/admin"
	RouteEmployee = "/empleado"
	RouteAdopter  = "/adoptador"
)

// numericRoles maps the numeric role codes some backend builds still send.
// Legacy compatibility shim: drop once the backend always sends names.
var numericRoles = map[string]Role{
	"1": RoleAdopter,
	"2": RoleEmployee,
	"3": RoleAdmin,
}

var rolePrefix = regexp.MustCompile(`^role[_-]?`)

// NormalizeRole maps a raw role value from the backend — numeric codes,
// ROLE_-prefixed authorities, Spanish or English spellings — onto the
// closed enum. The second return reports whether the value actually
// matched; when it did not, the role degrades to RoleAdopter so an
// unrecognized value is never silently granted elevated access.
func NormalizeRole(raw string) (Role, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return RoleAdopter, false
	}

	if r, ok := numericRoles[s]; ok {
		return r, true
	}

	cleaned := rolePrefix.ReplaceAllString(s, "")
	switch {
	case strings.Contains(cleaned, "admin"):
		if strings.Contains(cleaned, "super") {
			return RoleSuperAdmin, true
		}
		return RoleAdmin, true
	case strings.Contains(cleaned, "empleado"),
		strings.Contains(cleaned, "employee"),
		strings.Contains(cleaned, "staff"),
		strings.Contains(cleaned, "worker"):
		return RoleEmployee, true
	case strings.Contains(cleaned, "adoptador"),
		strings.Contains(cleaned, "adopter"):
		return RoleAdopter, true
	}

	return RoleAdopter, false
}

// IsAdmin reports whether the role carries admin capabilities.
func (r Role) IsAdmin() bool { return r == RoleAdmin || r == RoleSuperAdmin }

// IsSuperAdmin reports whether the role is the superadmin variant.
func (r Role) IsSuperAdmin() bool { return r == RoleSuperAdmin }

// IsAdopter reports whether the role is the unprivileged adopter role.
func (r Role) IsAdopter() bool { return r == RoleAdopter }

// RouteFor returns the landing route for a role. Total: unknown or empty
// roles land on the adopter home rather than erroring.
func RouteFor(r Role) string {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return RouteAdmin
	case RoleEmployee:
		return RouteEmployee
	default:
		return RouteAdopter
	}
}
