// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the operating mode of an account. A user is either a
// Conductor (driver executing routes) or a Gestor (manager planning and
// assigning them); the role can be switched at runtime.
type Role string

const (
	// RoleConductor indicates a driver account.
	RoleConductor Role = "Conductor"
	// RoleGestor indicates a manager account.
	RoleGestor Role = "Gestor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleConductor, RoleGestor:
		return true
	default:
		return false
	}
}

// ParseRole converts a string to a Role, tolerating case differences.
// Returns the zero Role when the string names no known role.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conductor":
		return RoleConductor
	case "gestor":
		return RoleGestor
	default:
		return Role("")
	}
}
